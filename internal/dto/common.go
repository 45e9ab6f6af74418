package dto

// Every endpoint answers with this envelope: success plus either data/message
// or a short machine-readable error string.

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func OK(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
