package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Rendyseptch/Login-app/internal/errors"
)

var validate = validator.New()

// User-facing message per (struct field, violated tag). Kept in one table so
// the wording stays consistent with what the frontend renders.
var fieldMessages = map[string]string{
	"RegisterInput.Username.required":        "Username is required",
	"RegisterInput.Username.alphanum":        "Username can only contain letters and numbers",
	"RegisterInput.Username.min":             "Username must be at least 3 characters long",
	"RegisterInput.Username.max":             "Username cannot be longer than 30 characters",
	"RegisterInput.Email.required":           "Email is required",
	"RegisterInput.Email.email":              "Please enter a valid email address",
	"RegisterInput.Password.required":        "Password is required",
	"RegisterInput.Password.min":             "Password must be at least 6 characters long",
	"RegisterInput.ConfirmPassword.required": "Please confirm your password",
	"RegisterInput.ConfirmPassword.eqfield":  "Passwords do not match",
	"LoginInput.Login.required":              "Email or username is required",
	"LoginInput.Login.min":                   "Email or username must be at least 3 characters long",
	"LoginInput.Login.max":                   "Email or username is too long",
	"LoginInput.Password.required":           "Password is required",
	"LoginInput.Password.min":                "Password must be at least 6 characters long",
}

func collectMessages(err error) *apperrors.ValidationError {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &apperrors.ValidationError{Messages: []string{"invalid input"}}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.StructNamespace() + "." + fe.Tag()
		if msg, found := fieldMessages[key]; found {
			messages = append(messages, msg)
		} else {
			messages = append(messages, "Invalid value for "+fe.Field())
		}
	}

	return &apperrors.ValidationError{Messages: messages}
}

// Validate checks every rule and reports all violations at once.
func (in RegisterInput) Validate() error {
	if verr := collectMessages(validate.Struct(in)); verr != nil {
		return verr
	}
	return nil
}

// Validate checks the login identifier and password shape. An identifier
// containing "@" must additionally be a syntactically valid email address.
func (in LoginInput) Validate() error {
	verr := collectMessages(validate.Struct(in))

	if strings.Contains(in.Login, "@") {
		if err := validate.Var(in.Login, "email"); err != nil {
			if verr == nil {
				verr = &apperrors.ValidationError{}
			}
			verr.Messages = append(verr.Messages, "Please enter a valid email address")
		}
	}

	if verr != nil {
		return verr
	}
	return nil
}
