package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeOutOfStock         = "OUT_OF_STOCK"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a user-facing message.
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
	ErrMissingFields      = NewDomainError(ErrCodeMissingField, "Missing required fields")
	ErrMissingCredentials = NewDomainError(ErrCodeMissingField, "Missing credentials")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid credentials")
	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "Email is already registered")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found or inactive")
	ErrOutOfStock         = NewDomainError(ErrCodeOutOfStock, "Product out of stock")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
)

// RemoteError is a server-rejected operation (success=false) as seen by the
// client workflows. Message holds the server-provided text verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return e.Message
}

// NewRemoteError creates a RemoteError from a server message.
func NewRemoteError(message string) *RemoteError {
	return &RemoteError{Message: message}
}

// IsRemote reports whether err is a server-rejected error rather than a
// transport failure.
func IsRemote(err error) bool {
	_, ok := err.(*RemoteError)
	return ok
}
