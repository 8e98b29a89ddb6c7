package response

import "github.com/yourname/sleepdiary/internal"

// Wire bodies for the non-record endpoints. Record endpoints marshal
// internal.SleepRecord directly.

type DeleteResult struct {
	Success bool `json:"success"`
}

type Advice struct {
	Advice string `json:"advice"`
}

func BadRequest(msg string) *internal.AppError {
	return internal.NewAppError(400, msg)
}

func NotFound(msg string) *internal.AppError {
	return internal.NewAppError(404, msg)
}

func InternalError(msg string) *internal.AppError {
	return internal.NewAppError(500, msg)
}

func NewAppError(status int, msg string) *internal.AppError {
	return internal.NewAppError(status, msg)
}
