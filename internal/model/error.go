package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeInvalidItem   = "INVALID_ITEM"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError is a business-logic error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrInvalidItem is returned when an order references a menu item
	// that does not exist.
	ErrInvalidItem = NewDomainError(ErrCodeInvalidItem, "Invalid item")
)
