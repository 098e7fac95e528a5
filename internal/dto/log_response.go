package dto

import (
	"logsearch-gateway/internal/model"
)

// SearchResponse is one page of search results. Total is the backend's count
// and can exceed len(Hits) when some rows failed to parse.
type SearchResponse struct {
	Total    uint64         `json:"total"`
	Hits     []model.LogHit `json:"hits"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	TookMs   uint64         `json:"took_ms"`
}

type ServiceListResponse struct {
	Services []string `json:"services"`
}

type FieldListResponse struct {
	Fields []string `json:"fields"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Backend string `json:"backend" example:"up"`
}
