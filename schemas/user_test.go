package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "a@b.com",
		Username:  "ann",
		Password:  "Abcdefgh",
	}
}

func TestRegisterInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr string
	}{
		{
			name:   "valid input",
			mutate: func(in *RegisterInput) {},
		},
		{
			name:    "missing first name",
			mutate:  func(in *RegisterInput) { in.FirstName = "" },
			wantErr: "First name is required",
		},
		{
			name:    "first name too short after trim",
			mutate:  func(in *RegisterInput) { in.FirstName = " A " },
			wantErr: "First name is required",
		},
		{
			name:    "last name too long",
			mutate:  func(in *RegisterInput) { in.LastName = longString(101) },
			wantErr: "Last name is too long",
		},
		{
			name:    "invalid email",
			mutate:  func(in *RegisterInput) { in.Email = "not-an-email" },
			wantErr: "Email is not valid",
		},
		{
			name:    "missing username",
			mutate:  func(in *RegisterInput) { in.Username = "" },
			wantErr: "Username is required",
		},
		{
			name:    "password too short",
			mutate:  func(in *RegisterInput) { in.Password = "Abcdefg" },
			wantErr: "Password must be at least 8 characters long",
		},
		{
			name:    "password without lowercase",
			mutate:  func(in *RegisterInput) { in.Password = "ABCDEFGH" },
			wantErr: "Password must contain at least one lowercase letter",
		},
		{
			name:    "password without uppercase",
			mutate:  func(in *RegisterInput) { in.Password = "abcdefgh" },
			wantErr: "Password must contain at least one uppercase letter",
		},
		{
			// No digit or symbol requirement exists.
			name:   "password with letters only",
			mutate: func(in *RegisterInput) { in.Password = "Abcdefghij" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegisterInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}

func TestRegisterInputNormalize(t *testing.T) {
	in := RegisterInput{
		FirstName: "  Ann ",
		LastName:  " Lee  ",
		Email:     " A@B.Com ",
		Username:  " ann ",
		Password:  "Abcdefgh",
	}
	require.NoError(t, in.Validate())
	assert.Equal(t, "Ann", in.FirstName)
	assert.Equal(t, "Lee", in.LastName)
	assert.Equal(t, "a@b.com", in.Email)
	assert.Equal(t, "ann", in.Username)
}

func TestLoginInputPartialValidation(t *testing.T) {
	// Absent fields are not checked; supplied fields follow the same rules.
	empty := LoginInput{}
	assert.NoError(t, empty.Validate())

	badEmail := LoginInput{Email: "nope", Password: "Abcdefgh"}
	err := badEmail.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email is not valid", verr.Message)

	badPassword := LoginInput{Email: "a@b.com", Password: "short"}
	err = badPassword.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password must be at least 8 characters long", verr.Message)

	ok := LoginInput{Email: " A@b.com ", Password: "Abcdefgh"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "a@b.com", ok.Email)
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
