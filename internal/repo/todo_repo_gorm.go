package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go-todo-api/internal/domain"
)

type ToDoRepo struct{ db *gorm.DB }

func NewToDoRepo(db *gorm.DB) *ToDoRepo { return &ToDoRepo{db: db} }

func (r *ToDoRepo) List(ctx context.Context, f domain.ToDoFilter, withRelated bool) ([]domain.ToDo, error) {
	q := r.db.WithContext(ctx).Model(&domain.ToDo{})
	if withRelated {
		q = q.Preload("Category")
	}
	q = applyFilter(q, f)

	var ts []domain.ToDo
	err := q.Order("created_at").Find(&ts).Error
	return ts, err
}

func applyFilter(q *gorm.DB, f domain.ToDoFilter) *gorm.DB {
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.TitleContains != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.TitleContains)+"%")
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", string(*f.Priority))
	}
	if f.Completed != nil {
		q = q.Where("is_completed = ?", *f.Completed)
	}
	if f.Overdue {
		q = q.Where("end_date < ?", f.Clock())
	}
	if f.Today {
		now := f.Clock()
		y, m, d := now.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		q = q.Where("start_date >= ? AND start_date < ?", day, day.AddDate(0, 0, 1))
	}
	if f.StartFrom != nil {
		q = q.Where("start_date >= ?", *f.StartFrom)
	}
	if f.EndTo != nil {
		q = q.Where("end_date <= ?", *f.EndTo)
	}
	return q
}

func (r *ToDoRepo) GetByID(ctx context.Context, id string) (*domain.ToDo, error) {
	var t domain.ToDo
	err := r.db.WithContext(ctx).Preload("Category").First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ToDoRepo) Create(ctx context.Context, t *domain.ToDo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ToDoRepo) Update(ctx context.Context, t *domain.ToDo) error {
	// full-row replace, last write wins
	return r.db.WithContext(ctx).Omit("Category", "User").Save(t).Error
}

func (r *ToDoRepo) Delete(ctx context.Context, t *domain.ToDo) error {
	return r.db.WithContext(ctx).Delete(&domain.ToDo{}, "id = ?", t.ID).Error
}
