// Package observability provides OpenTelemetry bootstrap and metric
// instruments for seqkit's optional instrumentation wrappers.
//
// Nothing here is touched by the core sequence operators; it backs
// sequence.Traced and sequence.Metered for applications that want
// traversal-level telemetry.
package observability
