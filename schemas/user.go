package schemas

import "strings"

type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,min=2,max=100,email"`
	Username  string `json:"username" validate:"required,min=2,max=100"`
	Password  string `json:"password" validate:"required,min=8,containslower,containsupper"`
}

var registerMessages = map[string]string{
	"FirstName.required":     "First name is required",
	"FirstName.min":          "First name is required",
	"FirstName.max":          "First name is too long",
	"LastName.required":      "Last name is required",
	"LastName.min":           "Last name is required",
	"LastName.max":           "Last name is too long",
	"Email.required":         "Email is required",
	"Email.min":              "Email is required",
	"Email.max":              "email is too long",
	"Email.email":            "Email is not valid",
	"Username.required":      "Username is required",
	"Username.min":           "Username is required",
	"Username.max":           "Username is too long",
	"Password.required":      "Password must be at least 8 characters long",
	"Password.min":           "Password must be at least 8 characters long",
	"Password.containslower": "Password must contain at least one lowercase letter",
	"Password.containsupper": "Password must contain at least one uppercase letter",
}

// Normalize trims the text fields and lowercases the email. Called before
// the rules run, so length limits apply to the trimmed value.
func (in *RegisterInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
}

func (in *RegisterInput) Validate() error {
	in.Normalize()
	return check(in, registerMessages)
}

// LoginInput is the partial variant: only supplied fields are checked,
// against the same rules as registration.
type LoginInput struct {
	Email    string `json:"email" validate:"omitempty,min=2,max=100,email"`
	Password string `json:"password" validate:"omitempty,min=8,containslower,containsupper"`
}

func (in *LoginInput) Validate() error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	return check(in, registerMessages)
}
