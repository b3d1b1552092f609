package handler

// Response is the success envelope every endpoint returns. The error
// counterpart lives in the global error handler so the two shapes stay
// symmetric: both carry a status discriminator and a human-readable
// message.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse builds the envelope for single-resource endpoints.
func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// ListResponse builds the envelope for listing endpoints. Results is a
// pointer so a zero count still serializes instead of being dropped by
// omitempty.
func ListResponse(results int, data interface{}) Response {
	return Response{
		Status:  "success",
		Results: &results,
		Data:    data,
	}
}
