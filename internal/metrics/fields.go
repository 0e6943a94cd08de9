package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod      = "method"
	AttrPath        = "path"
	AttrStatus      = "status"
	AttrMessageType = "message_type"
	AttrActionType  = "action_type"
)
