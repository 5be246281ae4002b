// Package logger provides structured logging for apistruct using zerolog.
//
// Clients log every dispatched request at debug level and failed requests at
// warn level through a component-scoped logger:
//
//	log := logger.Get("client.users")
//	log.Debug("request dispatched", logger.Fields("method", "GET", "url", url))
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
package logger
