package config

import (
	"go.uber.org/zap"
)

var Logger *zap.SugaredLogger

// InitLogger sets up the global logger: human-readable in development,
// JSON in production.
func InitLogger() error {
	var base *zap.Logger
	var err error
	if Env.IsDevelopment {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Logger = base.Sugar()
	return nil
}
