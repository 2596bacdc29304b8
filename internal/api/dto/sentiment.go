package dto

// HuggingFaceLabel is one label/score pair from the inference API.
type HuggingFaceLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HuggingFaceRequest is the body sent to text classification endpoints.
type HuggingFaceRequest struct {
	Inputs string `json:"inputs"`
}

// HuggingFaceError is returned by the inference API on failure.
type HuggingFaceError struct {
	Error string `json:"error"`
}

// LocalModelInfo is returned by the local model server's info endpoint.
type LocalModelInfo struct {
	ModelID string `json:"model_id"`
}
