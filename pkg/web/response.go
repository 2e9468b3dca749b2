// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken          string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
	Data                 any       `json:"data,omitempty"`
	Error                string    `json:"error,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns the human readable suffix for a failed validation of fe.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return fmt.Sprintf(" must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf(" must be at most %s", fe.Param())
	case "nefield":
		return fmt.Sprintf(" must differ from %s", fe.Param())
	case "variant":
		return " must be SAVINGS or CHECKING"
	case "amount":
		return " must be a decimal amount"
	}

	return " is invalid"
}

// BindingErrorMsg turns a request binding failure into the message returned to the client.
func BindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return "malformed request"
}
