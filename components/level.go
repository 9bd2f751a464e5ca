package components

import (
	"github.com/automoto/devour/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name   string
	Layout *leveldata.Layout
}

var Level = donburi.NewComponentType[LevelData]()
