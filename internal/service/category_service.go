package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/core/cache"
	"go-todo-api/internal/domain"
	"go-todo-api/internal/dto"
	"go-todo-api/internal/repo"
)

const categoryListKey = "categories:all"

type CategoryService struct {
	repo    domain.CategoryRepository
	rules   CategoryRules
	cache   *cache.Cache // nil disables caching
	listTTL time.Duration
	log     *zap.Logger
}

func NewCategoryService(r domain.CategoryRepository, c *cache.Cache, listTTL time.Duration, l *zap.Logger) *CategoryService {
	return &CategoryService{repo: r, cache: c, listTTL: listTTL, log: l}
}

func (s *CategoryService) Add(ctx context.Context, req dto.CreateCategoryRequest) (dto.ReturnModel[dto.CategoryResponse], error) {
	category := domain.Category{Name: req.Name}
	if err := s.repo.Create(ctx, &category); err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	s.invalidate(ctx)
	s.log.Info("category created", zap.Int("id", category.ID))
	return dto.Succeeded("category created", toCategoryResponse(category)), nil
}

func (s *CategoryService) Update(ctx context.Context, req dto.UpdateCategoryRequest) (dto.ReturnModel[dto.CategoryResponse], error) {
	category, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	if err := s.rules.ExistsCheck(category); err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	category.Name = req.Name
	if err := s.repo.Update(ctx, category); err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	s.invalidate(ctx)
	return dto.Succeeded("category updated", toCategoryResponse(*category)), nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (dto.ReturnModel[dto.CategoryResponse], error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	if err := s.rules.ExistsCheck(category); err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	return dto.Succeeded("category fetched", toCategoryResponse(*category)), nil
}

func (s *CategoryService) GetAll(ctx context.Context) (dto.ReturnModel[[]dto.CategoryResponse], error) {
	if s.cache != nil {
		list, err := cache.GetOrLoadJSON(s.cache, ctx, categoryListKey, s.listTTL, func(ctx context.Context) (*[]dto.CategoryResponse, error) {
			cs, e := s.repo.List(ctx)
			if e != nil {
				return nil, e
			}
			out := toCategoryResponses(cs)
			return &out, nil
		})
		if err == nil && list != nil {
			return dto.Succeeded("categories listed", *list), nil
		}
		if err != nil {
			s.log.Warn("category list cache bypass", zap.Error(err))
		}
	}
	cs, err := s.repo.List(ctx)
	if err != nil {
		return dto.ReturnModel[[]dto.CategoryResponse]{}, err
	}
	return dto.Succeeded("categories listed", toCategoryResponses(cs)), nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) (dto.ReturnModel[dto.CategoryResponse], error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	if err := s.rules.ExistsCheck(category); err != nil {
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	if err := s.repo.Delete(ctx, category); err != nil {
		if repo.IsForeignKeyViolation(err) {
			return dto.ReturnModel[dto.CategoryResponse]{}, apperr.Business("category has todos and cannot be deleted")
		}
		return dto.ReturnModel[dto.CategoryResponse]{}, err
	}
	s.invalidate(ctx)
	s.log.Info("category deleted", zap.Int("id", id))
	return dto.Succeeded("category deleted", toCategoryResponse(*category)), nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, categoryListKey)
	}
}
