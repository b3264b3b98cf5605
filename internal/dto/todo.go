package dto

import "time"

type CreateToDoRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=50"`
	Description string    `json:"description" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	CategoryID  int       `json:"categoryId" binding:"required"`
	Priority    string    `json:"priority" binding:"required"`
}

type UpdateToDoRequest struct {
	ID          string    `json:"id" binding:"required"`
	Title       string    `json:"title" binding:"required,min=2,max=50"`
	Description string    `json:"description" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	CategoryID  int       `json:"categoryId" binding:"required"`
	Priority    string    `json:"priority" binding:"required"`
	Completed   bool      `json:"completed"`
}

// ToDoResponse flattens the category relation to its name.
type ToDoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Completed   bool      `json:"completed"`
}
