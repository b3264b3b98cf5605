package domain

import "context"

type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`

	// Deleting a category with todos is restricted, never cascaded.
	ToDos []ToDo `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Category) TableName() string { return "categories" }

type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, c *Category) error
}
