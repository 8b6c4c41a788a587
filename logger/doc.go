// Package logger provides structured logging for seqkit instrumentation
// using zerolog.
//
// The core sequence operators never log; this package exists for the
// optional Logged/Traced/Metered wrappers and for applications embedding
// seqkit that want a consistent logging surface.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("seqkit")
//	log.Info("traversal complete", logger.Fields(logger.FieldStage, "filter"))
package logger
