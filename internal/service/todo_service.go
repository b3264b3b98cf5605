package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/domain"
	"go-todo-api/internal/dto"
	"go-todo-api/internal/repo"
	"go-todo-api/pkg/utils"
)

type ToDoService struct {
	repo  domain.ToDoRepository
	rules ToDoRules
	log   *zap.Logger
	now   func() time.Time
}

func NewToDoService(r domain.ToDoRepository, l *zap.Logger) *ToDoService {
	return &ToDoService{repo: r, log: l, now: time.Now}
}

func (s *ToDoService) Add(ctx context.Context, userID string, req dto.CreateToDoRequest) (dto.ReturnModel[dto.ToDoResponse], error) {
	priority, err := s.rules.PriorityMustBeValid(req.Priority)
	if err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	if err := s.rules.EndDateMustBeValid(req.EndDate, s.now()); err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	todo := domain.ToDo{
		ID:          utils.NewID(),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Priority:    priority,
		CategoryID:  req.CategoryID,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, &todo); err != nil {
		if repo.IsForeignKeyViolation(err) {
			return dto.ReturnModel[dto.ToDoResponse]{}, apperr.Business("category does not exist")
		}
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	s.log.Info("todo created", zap.String("id", todo.ID), zap.String("user", userID))
	return dto.Succeeded("todo created", toToDoResponse(todo)), nil
}

func (s *ToDoService) Update(ctx context.Context, req dto.UpdateToDoRequest) (dto.ReturnModel[dto.ToDoResponse], error) {
	todo, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	if err := s.rules.ExistsCheck(todo); err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	priority, err := s.rules.PriorityMustBeValid(req.Priority)
	if err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	if err := s.rules.EndDateMustBeValid(req.EndDate, s.now()); err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	todo.Title = req.Title
	todo.Description = req.Description
	todo.StartDate = req.StartDate
	todo.EndDate = req.EndDate
	todo.Priority = priority
	todo.CategoryID = req.CategoryID
	todo.Completed = req.Completed
	if err := s.repo.Update(ctx, todo); err != nil {
		if repo.IsForeignKeyViolation(err) {
			return dto.ReturnModel[dto.ToDoResponse]{}, apperr.Business("category does not exist")
		}
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	return dto.Succeeded("todo updated", toToDoResponse(*todo)), nil
}

func (s *ToDoService) GetByID(ctx context.Context, id string) (dto.ReturnModel[dto.ToDoResponse], error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	if err := s.rules.ExistsCheck(todo); err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	return dto.Succeeded("todo fetched", toToDoResponse(*todo)), nil
}

func (s *ToDoService) GetAll(ctx context.Context) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	return s.list(ctx, domain.ToDoFilter{}, true, "todos listed")
}

func (s *ToDoService) GetAllByCategory(ctx context.Context, categoryID int) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	return s.list(ctx, domain.ToDoFilter{CategoryID: &categoryID}, false, "todos listed")
}

func (s *ToDoService) GetAllByTitleContains(ctx context.Context, text string) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	return s.list(ctx, domain.ToDoFilter{TitleContains: text}, true, "todos listed")
}

// GetAllByEndDate lists todos whose end date has already passed.
func (s *ToDoService) GetAllByEndDate(ctx context.Context) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	return s.list(ctx, domain.ToDoFilter{Overdue: true, Now: s.now()}, true, "overdue todos listed")
}

func (s *ToDoService) GetAllByPriority(ctx context.Context, text string) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	priority, err := s.rules.PriorityMustBeValid(text)
	if err != nil {
		return dto.ReturnModel[[]dto.ToDoResponse]{}, err
	}
	return s.list(ctx, domain.ToDoFilter{Priority: &priority}, true, "todos listed")
}

func (s *ToDoService) GetAllCompleted(ctx context.Context) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	completed := true
	return s.list(ctx, domain.ToDoFilter{Completed: &completed}, true, "completed todos listed")
}

func (s *ToDoService) GetAllByDateRange(ctx context.Context, start, end time.Time) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	return s.list(ctx, domain.ToDoFilter{StartFrom: &start, EndTo: &end}, true, "todos in date range listed")
}

func (s *ToDoService) GetTodayTasks(ctx context.Context) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	return s.list(ctx, domain.ToDoFilter{Today: true, Now: s.now()}, true, "today's todos listed")
}

func (s *ToDoService) Delete(ctx context.Context, id string) (dto.ReturnModel[dto.ToDoResponse], error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	if err := s.rules.ExistsCheck(todo); err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	if err := s.repo.Delete(ctx, todo); err != nil {
		return dto.ReturnModel[dto.ToDoResponse]{}, err
	}
	s.log.Info("todo deleted", zap.String("id", id))
	return dto.Succeeded("todo deleted", toToDoResponse(*todo)), nil
}

func (s *ToDoService) list(ctx context.Context, f domain.ToDoFilter, withRelated bool, message string) (dto.ReturnModel[[]dto.ToDoResponse], error) {
	todos, err := s.repo.List(ctx, f, withRelated)
	if err != nil {
		return dto.ReturnModel[[]dto.ToDoResponse]{}, err
	}
	return dto.Succeeded(message, toToDoResponses(todos)), nil
}
