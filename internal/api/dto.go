package api

import "slidecraft/internal/slides"

type GenerateDeckRequest struct {
	Topic           string `json:"topic" binding:"required"`
	ReferenceText   string `json:"reference_text"`
	ReferenceURL    string `json:"reference_url"`
	ClientRequestID string `json:"client_request_id"`
}

type DeckResponse struct {
	RequestID string       `json:"request_id"`
	Deck      *slides.Deck `json:"deck,omitempty"`
	Error     *ErrorBody   `json:"error,omitempty"`
}

type AssistantRequest struct {
	Question        string `json:"question" binding:"required"`
	ClientRequestID string `json:"client_request_id"`
}

type AssistantResponse struct {
	RequestID string     `json:"request_id"`
	Answer    string     `json:"answer,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
}

type ExportRequest struct {
	Format          string `json:"format"`
	ClientRequestID string `json:"client_request_id"`
}

type ExportResponse struct {
	RequestID string     `json:"request_id"`
	Filename  string     `json:"filename,omitempty"`
	LocalPath string     `json:"local_path,omitempty"`
	RemoteURL string     `json:"remote_url,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
