package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Kind    string   `json:"kind,omitempty"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
