package model

// Response is the body written for every failed API call.
type Response struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func NewResponse(message string, kind string) Response {
	return Response{
		Error: message,
		Kind:  kind,
	}
}
