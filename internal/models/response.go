package models

// APIResponse is the backend's standard response envelope.
type APIResponse[T any] struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedResponse is the envelope of paginated list endpoints.
type PaginatedResponse[T any] struct {
	Status     string     `json:"status,omitempty"`
	Message    string     `json:"message,omitempty"`
	Data       T          `json:"data"`
	Pagination Pagination `json:"pagination"`
}
