package domain

import "github.com/weiawesome/library-id/internal/generator"

// MaxBatchSize bounds a single batch request.
const MaxBatchSize = 1000

// GenerateRequest represents a single identifier request.
type GenerateRequest struct {
	Hyphenate bool `form:"hyphenate"`
}

// ISBNRequest selects the ISBN form. An empty type means the default form.
type ISBNRequest struct {
	Type      string `form:"type" binding:"omitempty,oneof=isbn13 isbn10"`
	Hyphenate bool   `form:"hyphenate"`
}

// BatchRequest represents a batch identifier request.
type BatchRequest struct {
	Count     int  `json:"count" binding:"required"`
	Hyphenate bool `json:"hyphenate"`
}

// IDRequest carries one identifier to inspect.
type IDRequest struct {
	ID string `json:"id" binding:"required"`
}

// ConvertRequest converts an ISBN to the target form.
type ConvertRequest struct {
	ID string `json:"id" binding:"required"`
	To string `json:"to" binding:"required,oneof=isbn13 isbn10"`
}

// IdentifierResponse represents one generated identifier.
type IdentifierResponse struct {
	Scheme    generator.Scheme `json:"scheme"`
	ID        string           `json:"id"`
	Formatted string           `json:"formatted,omitempty"`
}

// BatchResponse represents a batch of generated identifiers.
type BatchResponse struct {
	Scheme    generator.Scheme `json:"scheme"`
	IDs       []string         `json:"ids"`
	Formatted []string         `json:"formatted,omitempty"`
	Count     int              `json:"count"`
}

// ValidationResponse reports whether an identifier is well-formed.
type ValidationResponse struct {
	Scheme generator.Scheme `json:"scheme"`
	ID     string           `json:"id"`
	Valid  bool             `json:"valid"`
	Reason string           `json:"reason,omitempty"`
}

// FormatResponse is the display form of an identifier.
type FormatResponse struct {
	ID        string `json:"id"`
	Formatted string `json:"formatted"`
}

// ConvertResponse is an ISBN converted between forms.
type ConvertResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Formatted string `json:"formatted"`
}

// SchemesResponse lists the available identifier schemes.
type SchemesResponse struct {
	Schemes []generator.Scheme `json:"schemes"`
}
