package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init replaces zap's global logger so packages can log through zap.L().
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case "production", "staging":
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build %v logger -> %w", environment, err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
