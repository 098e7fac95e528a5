package dto

type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
	TraceID  string `json:"trace_id"`
}

// ChatMessage is one message of an OpenAI-compatible chat completion.
type ChatMessage struct {
	Role    string `json:"role"`    // "system" | "user" | "assistant"
	Content string `json:"content"`
}
