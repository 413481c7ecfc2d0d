// Package logger provides structured logging for neto using zerolog.
//
// It supports JSON and console output, level configuration, component-scoped
// loggers, and the Secret value type for values that must never be written
// in plaintext.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("httpclient")
//	log.Debug("request sent", logger.Fields("method", "GET", "token", logger.Secret(tok)))
package logger
