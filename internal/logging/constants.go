package logging

// Field keys shared by load, report and request logs.
const (
	FieldFile      = "file_path"
	FieldMonth     = "month"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldCount     = "count"
	FieldKind      = "kind"
	FieldFilter    = "filter"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldRequestID = "request_id"
	FieldOutput    = "output_file"
)
