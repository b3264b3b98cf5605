package domain

import (
	"context"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority accepts the closed set case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	}
	return "", false
}

type ToDo struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:50;not null" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Priority    Priority  `gorm:"size:8" json:"priority"`
	Completed   bool      `gorm:"column:is_completed" json:"completed"`
	CategoryID  int       `gorm:"index;not null" json:"categoryId"`
	UserID      string    `gorm:"size:36;index;not null" json:"userId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (ToDo) TableName() string { return "todos" }

// ToDoFilter enumerates the supported list queries; each endpoint sets
// exactly one facet, filters are not combined.
type ToDoFilter struct {
	CategoryID    *int
	TitleContains string
	Priority      *Priority
	Completed     *bool
	Overdue       bool // end date already passed
	Today         bool // start date falls on the current calendar day
	StartFrom     *time.Time
	EndTo         *time.Time

	// Now anchors Overdue/Today; the zero value means time.Now.
	Now time.Time
}

func (f ToDoFilter) Clock() time.Time {
	if f.Now.IsZero() {
		return time.Now()
	}
	return f.Now
}

type ToDoRepository interface {
	// List returns todos matching the filter; withRelated controls
	// eager loading of the category relation.
	List(ctx context.Context, f ToDoFilter, withRelated bool) ([]ToDo, error)
	GetByID(ctx context.Context, id string) (*ToDo, error)
	Create(ctx context.Context, t *ToDo) error
	Update(ctx context.Context, t *ToDo) error
	Delete(ctx context.Context, t *ToDo) error
}
