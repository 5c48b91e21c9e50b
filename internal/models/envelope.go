package models

// ActionResult is the uniform envelope returned by every mutation action.
// Actions never propagate errors to their caller; failures of any kind are
// folded into this shape.
type ActionResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Envelope messages shared across actions.
const (
	MsgUnauthorized = "Unauthorized."
	MsgForbidden    = "User is not authorized for this action."
	MsgNotAdmin     = "User is not an admin."
)

// Ok builds a success envelope.
func Ok(message string) ActionResult {
	return ActionResult{Success: true, Message: message}
}

// Fail builds a failure envelope without field errors.
func Fail(message string) ActionResult {
	return ActionResult{Success: false, Message: message}
}

// FailFields builds a validation-failure envelope with a per-field error map.
func FailFields(message string, errs map[string][]string) ActionResult {
	return ActionResult{Success: false, Message: message, Errors: errs}
}
