package dto

// ErrorResponse is the error body used by the news endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse is the message body used by the auth endpoints.
type DetailResponse struct {
	Detail string `json:"detail"`
}
