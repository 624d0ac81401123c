package serverutils

import "genai-studio-be/internal/dto"

// ErrorResponse is the only error body clients ever see.
func ErrorResponse(message string) dto.MessageResponse {
	return dto.MessageResponse{Message: message}
}
