// Package logging builds the application logger.
package logging

import (
	"go.uber.org/zap"
)

// Setup returns a logger configured for the application: development config
// when verbose is set, production otherwise, with the app identity attached
// as initial fields. The logger is also installed as zap's global.
func Setup(verbose bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
