// Package logger provides structured logging for the Triton client libraries,
// built on zerolog.
//
// Components accept an optional *logger.Logger; passing nil falls back to the
// package-level default:
//
//	log := logger.NewDefault("vmapi")
//	log.Debug("request sent", logger.Fields(logger.FieldAttempt, 2))
package logger
