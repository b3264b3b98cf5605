package repo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("UNIQUE constraint failed: users.email"), true},
		{errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'email'"), true},
		{errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key"`), true},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsDuplicateKey(tc.err), "%v", tc.err)
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("FOREIGN KEY constraint failed"), true},
		{errors.New(`ERROR: update or delete on table "categories" violates foreign key constraint`), true},
		{errors.New("Error 1451: Cannot delete or update a parent row: a foreign key constraint fails"), true},
		{errors.New("UNIQUE constraint failed: users.email"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsForeignKeyViolation(tc.err), "%v", tc.err)
	}
}
