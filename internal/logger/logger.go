package logger

import (
	"go.uber.org/zap"
)

// NewNamed creates a zap logger named after the service. Development
// environments get console output, everything else structured JSON.
func NewNamed(env, service string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
