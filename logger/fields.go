package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldEndpoint  = "endpoint"
	FieldMethod    = "method"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldRequestID = "request_id"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldSchema    = "schema"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Debug("request dispatched", logger.Fields("endpoint", "users", "status", 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// RequestFields creates fields describing one dispatched endpoint request.
func RequestFields(endpoint, method, url, requestID string) map[string]any {
	return map[string]any{
		FieldEndpoint:  endpoint,
		FieldMethod:    method,
		FieldURL:       url,
		FieldRequestID: requestID,
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]any, err error) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields[FieldError] = err.Error()
	return fields
}

// MergeWithDuration adds a duration field to an existing map.
func MergeWithDuration(fields map[string]any, d time.Duration) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields[FieldDuration] = d.Milliseconds()
	return fields
}
