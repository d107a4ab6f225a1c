// Package pkg holds small cross-layer helpers shared by handlers.
package pkg

// DomainError is the HTTP-facing error envelope: a stable machine code, a
// human message and the status the handler should respond with.
type DomainError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	cause      error
}

func NewDomainErrorSimple(code, message string, httpStatus int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewDomainError keeps the underlying cause for logs; it is never serialized
// to clients.
func NewDomainError(code, message string, cause error, httpStatus int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus, cause: cause}
}

func (e *DomainError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
