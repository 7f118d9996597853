package api

import "github.com/phrazzld/citecheck/internal/citation"

// ValidateCitationRequest is the payload for POST /api/citations/validate.
//
// Format is a pointer so an absent format can take the configured default
// while an explicitly empty one is treated as an unknown style.
type ValidateCitationRequest struct {
	Citation string  `json:"citation"`
	Format   *string `json:"format,omitempty"`
}

// BatchValidateRequest is the payload for POST /api/citations/validate/batch.
type BatchValidateRequest struct {
	Format    *string  `json:"format,omitempty"`
	Citations []string `json:"citations" validate:"required,min=1"`
}

// BatchValidateResponse holds one verdict per citation, in request order.
type BatchValidateResponse struct {
	Results []any `json:"results"`
}

// StyleResponse describes one supported style.
type StyleResponse struct {
	Style   citation.Style `json:"style"`
	Version string         `json:"version"`
}

// StylesResponse is the body of GET /api/styles.
type StylesResponse struct {
	Styles []StyleResponse `json:"styles"`
}
