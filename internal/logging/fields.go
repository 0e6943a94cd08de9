package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldMessageType = "message_type"
	FieldActionType  = "action_type"
	FieldActionNum   = "action_number"
	FieldTeamNumber  = "team_number"
	FieldPlayerNum   = "player_number"
	FieldField       = "field"
	FieldConnID      = "conn_id"
	FieldRequestID   = "request_id"
	FieldPath        = "path"
	FieldMethod      = "method"
	FieldStatusCode  = "status_code"
	FieldCount       = "count"
	FieldDurationMS  = "duration_ms"
)
