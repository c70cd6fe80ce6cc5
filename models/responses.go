package models

// Response is the uniform envelope returned by every JSON endpoint.
//
// Code mirrors the HTTP status code of the response. Status is true for
// successful requests. Message carries a human-readable outcome or the error
// text; Data carries the payload.
type Response struct {
	Code    int    `json:"code"`
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
