package logger

import (
	"github.com/google/uuid"
)

// Record field names shared by the JSON output and the console renderer.
const (
	FieldTimestamp  = "timestamp"
	FieldLevel      = "level"
	FieldScope      = "scope"
	FieldMessage    = "message"
	FieldMetadata   = "metadata"
	FieldStackTrace = "stackTrace"
)

// Standard field keys for contextual enrichment.
const (
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
	FieldRequestID = "request_id"
)

// Fields builds a map[string]interface{} from alternating key-value pairs,
// convenient for metadata attachments:
//
//	log.Info("saved", logger.Options{Metadata: logger.Fields("op", "save", "id", 42)})
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// NewRequestID returns a fresh request identifier for WithRequestID.
func NewRequestID() string {
	return uuid.NewString()
}
