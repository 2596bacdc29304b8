package dto

import "encoding/json"

// NewsDataResponse is the response of the NewsData.io latest endpoint. On
// failure Results holds an object with a message instead of a list.
type NewsDataResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Results      json.RawMessage `json:"results"`
}

// NewsDataArticle is one entry of NewsDataResponse.Results.
type NewsDataArticle struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        string  `json:"link"`
	ImageURL    *string `json:"image_url"`
	PubDate     string  `json:"pubDate"`
	Language    string  `json:"language"`
}

// NewsDataError is the shape of Results when Status is "error".
type NewsDataError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}
