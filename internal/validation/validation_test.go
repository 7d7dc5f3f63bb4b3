package validation_test

import (
	"testing"

	"github.com/jrsteele09/go-job-tracker/internal/errors"
	"github.com/jrsteele09/go-job-tracker/internal/validation"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=5"`
	Email  string  `json:"email" validate:"required,email"`
	Link   *string `json:"link" validate:"omitempty,url"`
	Status string  `json:"status" validate:"oneof=Applied 'Offer Received'"`
}

func TestStruct(t *testing.T) {
	v := validation.New()

	require.NoError(t, v.Struct(sample{Name: "abc", Email: "a@b.com", Status: "Offer Received"}))

	bad := "not a url"
	err := v.Struct(sample{Name: "abcdefg", Email: "nope", Link: &bad, Status: "Lost"})
	require.True(t, errors.Is(err, errors.ErrValidation))

	msg := validation.Message(err)
	require.Contains(t, msg, "name must be at most 5 characters")
	require.Contains(t, msg, "email must be a valid email address")
	require.Contains(t, msg, "link must be a valid URL")
	require.Contains(t, msg, "status must be one of Applied Offer Received")

	err = v.Struct(sample{Status: "Applied"})
	require.Contains(t, validation.Message(err), "name is required")
}
