package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidField      = "INVALID_FIELD"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeInvalidCategory   = "INVALID_CATEGORY"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeSessionNotFound   = "SESSION_NOT_FOUND"
	ErrCodeNoProductSelected = "NO_PRODUCT_SELECTED"
	ErrCodeSizeRequired      = "SIZE_REQUIRED"
	ErrCodeInvalidSize       = "INVALID_SIZE"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)

// Domain errors for business logic
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
	ErrInvalidCategory   = NewDomainError(ErrCodeInvalidCategory, "Category must be one of All, Classic or Streetwear")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrSessionNotFound   = NewDomainError(ErrCodeSessionNotFound, "Session not found or expired")
	ErrNoProductSelected = NewDomainError(ErrCodeNoProductSelected, "No product is selected")
	ErrSizeRequired      = NewDomainError(ErrCodeSizeRequired, "size required")
	ErrInvalidSize       = NewDomainError(ErrCodeInvalidSize, "Size is not offered for the selected product")
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
)
