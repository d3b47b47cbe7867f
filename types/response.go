package types

// ApiResponse is the envelope of every JSON response. Failures carry a
// message instead of data.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Fail builds a failure envelope.
func Fail(message string) ApiResponse {
	return ApiResponse{Success: false, Message: message}
}

// Collection builds a success envelope for a list of items.
func Collection(items interface{}, count int) ApiResponse {
	return ApiResponse{Success: true, Count: &count, Data: items}
}
