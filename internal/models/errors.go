package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// ValidationFailsMessage is the fixed message of every 400 response body.
const ValidationFailsMessage = "Validation Fails"

// ExceptionResponse is the JSON body written for validation and internal failures.
type ExceptionResponse struct {
	Timestamp       string `json:"timestamp"`
	Message         string `json:"message"`
	Details         string `json:"details"`
	HTTPCodeMessage string `json:"httpCodeMessage"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string
	Message string
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
	Fields  []FieldError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Details joins field errors as "field:message." pairs.
func (e *AppError) Details() string {
	var sb strings.Builder
	for _, f := range e.Fields {
		sb.WriteString(f.Field)
		sb.WriteString(":")
		sb.WriteString(f.Message)
		sb.WriteString(".")
	}
	return sb.String()
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with given id %v not found!", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewFieldValidationError reports one or more rejected fields.
func NewFieldValidationError(fields ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: ValidationFailsMessage,
		Fields:  fields,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// HasCode reports whether err wraps an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound reports whether err is a not-found AppError.
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}

// IsValidation reports whether err is a validation AppError.
func IsValidation(err error) bool {
	return HasCode(err, CodeValidation)
}

// RespondWithError writes the standardized error body for status.
// 404 responses carry the bare message as text; everything else is an ExceptionResponse.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var appErr *AppError
	isApp := errors.As(err, &appErr)

	if status == fiber.StatusNotFound {
		msg := err.Error()
		if isApp {
			msg = appErr.Message
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(msg)
	}

	response := ExceptionResponse{
		Timestamp:       time.Now().Format(time.DateOnly),
		HTTPCodeMessage: utils.StatusMessage(status),
	}

	switch {
	case isApp && appErr.Code == CodeValidation:
		response.Message = ValidationFailsMessage
		response.Details = appErr.Details()
		if response.Details == "" {
			response.Details = appErr.Message
		}
	case isApp && appErr.Err != nil:
		response.Message = appErr.Err.Error()
		response.Details = "uri=" + c.Path()
	default:
		response.Message = err.Error()
		response.Details = "uri=" + c.Path()
	}

	return c.Status(status).JSON(response)
}
