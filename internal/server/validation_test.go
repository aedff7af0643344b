package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Tier     string `validate:"omitempty,oneof=creator professional executive"`
}

func TestValidateStruct_Valid(t *testing.T) {
	form := registrationForm{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Tier:     "professional",
	}

	errs := ValidateStruct(form)
	assert.Empty(t, errs)
}

func TestValidateStruct_Invalid(t *testing.T) {
	form := registrationForm{
		Email:    "not-an-email",
		Password: "short",
		Tier:     "platinum",
	}

	errs := ValidateStruct(form)
	require.Len(t, errs, 4)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "Name is required", byField["Name"].Message)
	assert.Equal(t, "Email must be a valid email address", byField["Email"].Message)
	assert.Equal(t, "Password must be at least 8 characters", byField["Password"].Message)
	assert.Equal(t, "Tier must be one of: creator professional executive", byField["Tier"].Message)
}
