package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `validate:"required,min=3,max=30"`
	Email    string `validate:"required,email"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Username: "alice", Email: "alice@example.com"}))

	err := v.Validate(&signup{Username: "al", Email: "nope"})
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"username failed on min=3", "email failed on email"}, verr.Fields)
}
