package service

import (
	"time"
	"unicode"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/domain"
	"go-todo-api/internal/repo"
)

// Rule guards: each either passes silently or returns a typed error.
// Guards never touch storage themselves.

type CategoryRules struct{}

func (CategoryRules) ExistsCheck(c *domain.Category) error {
	if c == nil {
		return apperr.NotFound("category not found")
	}
	return nil
}

type ToDoRules struct{}

func (ToDoRules) ExistsCheck(t *domain.ToDo) error {
	if t == nil {
		return apperr.NotFound("todo not found")
	}
	return nil
}

// EndDateMustBeValid rejects end dates at or before now.
func (ToDoRules) EndDateMustBeValid(end, now time.Time) error {
	if !end.After(now) {
		return apperr.Validation("end date must be later than the current time", "endDate")
	}
	return nil
}

func (ToDoRules) PriorityMustBeValid(text string) (domain.Priority, error) {
	p, ok := domain.ParsePriority(text)
	if !ok {
		return "", apperr.Validation("priority must be one of Low, Medium, High", "priority")
	}
	return p, nil
}

type UserRules struct{}

func (UserRules) ExistsCheck(u *domain.User) error {
	if u == nil {
		return apperr.NotFound("user not found")
	}
	return nil
}

// IdentityResult converts a failed account-store operation into a
// business error carrying the first failure description.
func (UserRules) IdentityResult(err error) error {
	if err == nil {
		return nil
	}
	if repo.IsDuplicateKey(err) {
		return apperr.Business("email already registered")
	}
	return apperr.Business(err.Error())
}

// PasswordMustBeStrong requires 8+ chars with upper, lower and digit.
func (UserRules) PasswordMustBeStrong(pw, field string) error {
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if len(pw) < 8 || !upper || !lower || !digit {
		return apperr.Validation("password must be at least 8 characters with an upper case letter, a lower case letter and a digit", field)
	}
	return nil
}
