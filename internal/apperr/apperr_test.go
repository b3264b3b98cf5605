package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindBusiness, KindOf(Business("nope")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("denied")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad input", "name")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom", errors.New("root"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("loading user: %w", NotFound("user not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(err, KindBusiness))
}

func TestIsNil(t *testing.T) {
	assert.False(t, Is(nil, KindInternal))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "missing", NotFound("missing").Error())

	root := errors.New("root cause")
	internal := Internal("", root)
	assert.Equal(t, "root cause", internal.Error())
	assert.ErrorIs(t, internal, root)

	var empty Error
	assert.Equal(t, "internal error", empty.Error())
}

func TestFieldsOf(t *testing.T) {
	err := Validation("bad input", "name", "email")
	require.Equal(t, []string{"name", "email"}, FieldsOf(err))

	assert.Nil(t, FieldsOf(Business("nope")))
	assert.Nil(t, FieldsOf(errors.New("plain")))
}
