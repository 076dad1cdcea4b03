package types

// Envelope is the success shape the frontend consumes:
// {"message": "...", "data": ...} with an optional row-change count for
// mutations that report one.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Changes *int64 `json:"changes,omitempty"`
}

// ErrorEnvelope is the failure shape: {"error": "..."}.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// LoginResponse is the one endpoint that breaks the envelope: the token sits
// at the top level next to the message.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}
