package systems

import "go.uber.org/zap"

var gameLog = zap.NewNop()

// SetLogger sets the logger used by all systems. nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	gameLog = l
}
