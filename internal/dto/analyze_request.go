package dto

type AnalyzeRequest struct {
	TraceID string `json:"trace_id" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}
