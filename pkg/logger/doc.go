// Package logger builds configured log/slog loggers used as the diagnostics
// sink across the module.
//
//	log := logger.New(logger.WithDevelopment("roomcast"))
//	em, _ := emitter.New(redisURL, "", emitter.WithLogger(log))
//
// The emitter logs usage defects as warnings, transport failures as errors
// and successful publishes at debug level; pick the level accordingly.
package logger
