package models

// ApiResponse is the envelope for every /api/roast reply.
type ApiResponse struct {
	Success bool         `json:"success"`
	Data    *RoastResult `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func SuccessResponse(result *RoastResult) ApiResponse {
	return ApiResponse{Success: true, Data: result}
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{Success: false, Error: message}
}
