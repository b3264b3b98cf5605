package dto

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64"`
}

type UpdateCategoryRequest struct {
	ID   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required,min=2,max=64"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
