package telegram

import "fmt"

// APIError ответ Bot API с ok=false либо неожиданным HTTP статусом.
type APIError struct {
	Code        int
	Description string
}

func NewAPIError(code int, description string) *APIError {
	return &APIError{Code: code, Description: description}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}
