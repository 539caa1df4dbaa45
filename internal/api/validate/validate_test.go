package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	Email    string `json:"email" validate:"required,min=3,email"`
	Username string `json:"username" validate:"min=3"`
	Password string `json:"password" validate:"passwordlen,hasdigit,hasspecial"`
}

func TestStructValid(t *testing.T) {
	assert.Nil(t, Struct(account{Email: "ada@example.com", Username: "ada", Password: "pass1234!"}))
}

func TestStructMessages(t *testing.T) {
	tests := []struct {
		name  string
		in    account
		field string
		msg   string
	}{
		{"short password", account{"ada@example.com", "ada", "short"}, "password", "the password should have min and max length between 8-15"},
		{"long password", account{"ada@example.com", "ada", "averyveryverylong1!"}, "password", "the password should have min and max length between 8-15"},
		{"no digit", account{"ada@example.com", "ada", "password!"}, "password", "the password should have at least one number"},
		{"no special", account{"ada@example.com", "ada", "password1"}, "password", "the password should have at least one special character"},
		{"bad email", account{"not-an-email", "ada", "pass1234!"}, "email", "the email must be in a valid email format"},
		{"missing email", account{"", "ada", "pass1234!"}, "email", "the email is required"},
		{"short username", account{"ada@example.com", "ad", "pass1234!"}, "username", "the username must have minimum length of 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.in)
			assert.Equal(t, Errs{{Field: tt.field, Msg: tt.msg}}, errs)
		})
	}
}

func TestStructCollectsEveryField(t *testing.T) {
	errs := Struct(account{})
	assert.Len(t, errs, 3)
	assert.Contains(t, errs.Error(), "email: ")
	assert.Contains(t, errs.Error(), "; ")
}
