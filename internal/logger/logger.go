package logger

import "go.uber.org/zap"

// New creates a zap logger appropriate for the environment: JSON at info
// level in production, console at debug level otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// NewNamed creates an environment-appropriate logger named after the
// service, so every line carries its origin.
func NewNamed(env, name string) (*zap.Logger, error) {
	log, err := New(env)
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
