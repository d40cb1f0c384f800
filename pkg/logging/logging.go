// Package logging builds the process-wide zap logger for the collate CLI.
package logging

import (
	"go.uber.org/zap"
)

// Setup constructs the application logger: a console development config at
// debug level when debug is set, the JSON production config otherwise. The
// returned logger is also installed as zap's global.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"app":     appName,
		"version": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
