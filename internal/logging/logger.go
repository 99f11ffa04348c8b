// Package logging is the structured logger shared by the loader, the report generator
// and the HTTP handlers. Production code logs through Logger backed by logrus; tests
// capture entries with MockLogger.
package logging

// Logger is a leveled logger carrying structured fields. Derived loggers returned by
// the With methods keep the fields of their parent.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError attaches err under the logrus "error" key.
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is one structured key/value pair. Keys come from the Field* constants.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
