package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger: human-readable in development,
// JSON in production.
func New(environment string) *zap.SugaredLogger {
	var l *zap.Logger
	var err error
	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}
