package service

import (
	"go-todo-api/internal/domain"
	"go-todo-api/internal/dto"
)

func toCategoryResponse(c domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name}
}

func toCategoryResponses(cs []domain.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toToDoResponse(t domain.ToDo) dto.ToDoResponse {
	r := dto.ToDoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Priority:    string(t.Priority),
		Completed:   t.Completed,
	}
	if t.Category != nil {
		r.Category = t.Category.Name
	}
	return r
}

func toToDoResponses(ts []domain.ToDo) []dto.ToDoResponse {
	out := make([]dto.ToDoResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toToDoResponse(t))
	}
	return out
}

func toUserResponse(u domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
	}
}
