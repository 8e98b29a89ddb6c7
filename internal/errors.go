package internal

// AppError is the JSON error body returned by the API.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
