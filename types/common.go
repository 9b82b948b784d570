package types

import (
	"bytes"
	"encoding/json"
)

// APIResponse is the envelope every endpoint response is unwrapped through.
// Data is kept raw so callers can decode it into the operation's concrete
// type after the envelope check.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

// HasData reports whether the envelope carries a payload. Absence of data is
// the authoritative failure signal: the success flag is ambiguous across API
// versions and must not be trusted on its own.
func (r APIResponse) HasData() bool {
	data := bytes.TrimSpace(r.Data)
	return len(data) > 0 && !bytes.Equal(data, []byte("null"))
}

// ListParams holds optional pagination parameters. Page is 1-based.
type ListParams struct {
	Page    *int
	PerPage *int
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
}

// PaginatedResponse wraps a page of records with its pagination window
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// Metadata is an ordered key/value pair attached to orders and webhook
// payloads. The API models metadata as an array, not a map, so ordering is
// preserved.
type Metadata struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
