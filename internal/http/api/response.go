package api

import (
	"fmt"
	"strings"

	"github.com/kategengler/api-v2/internal/changeset"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr   = "INTERNAL_ERROR"
	ErrValidationErr = "VALIDATION_ERROR"
	ErrBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound  = "NOT_FOUND"
)

type TeamResponse struct {
	Team TeamSchema `json:"team"`
}

type AccessTokenResponse struct {
	AccessToken AccessTokenSchema `json:"access_token"`
}

type CanvasResponse struct {
	Canvas CanvasSchema `json:"canvas"`
}

type CanvasListResponse struct {
	Canvases []CanvasSchema `json:"canvases"`
}

type OverviewResponse struct {
	Overview OverviewSchema `json:"overview"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Fields  []changeset.FieldError `json:"fields,omitempty"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

// ChangesetError renders accumulated field errors so the caller can show
// every invalid field at once.
func ChangesetError(errs changeset.Errors) ErrorResponse {
	var errMsgs []string
	for _, fe := range errs {
		errMsgs = append(errMsgs, fmt.Sprintf("%s %s", fe.Field, fe.Message))
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
			Fields:  errs,
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
