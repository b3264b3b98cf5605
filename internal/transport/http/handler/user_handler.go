package handler

import (
	"github.com/gin-gonic/gin"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/dto"
	"go-todo-api/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	result, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		_ = c.Error(apperr.Validation("email is required", "email"))
		return
	}
	result, err := h.svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		_ = c.Error(apperr.Validation("id is required", "id"))
		return
	}
	var req dto.UserUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	result, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		_ = c.Error(apperr.Validation("id is required", "id"))
		return
	}
	var req dto.ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	result, err := h.svc.ChangePassword(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		_ = c.Error(apperr.Validation("id is required", "id"))
		return
	}
	result, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}
