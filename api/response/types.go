/*
Package response renders every API reply in one envelope.

	success: { success: true, data: {...}, message: "...", code: 200, request_id: "..." }
	failure: { success: false, error: "ERROR_CODE", message: "...", code: 4xx/5xx, request_id: "..." }

Internal failures are logged with their stack and answered with a generic
message; domain rule messages are returned verbatim.
*/
package response

// RequestIDKey gin context key holding the request id
const RequestIDKey = "request_id"

// Response envelope
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Field     string      `json:"field,omitempty"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// ListData data of a list reply; Total is set for order lists only
type ListData struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
	Total *float64    `json:"total,omitempty"`
}
