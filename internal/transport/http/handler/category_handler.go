package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/dto"
	"go-todo-api/internal/service"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Mount(g *gin.RouterGroup) {
	g.POST("/add", h.Add)
	g.PUT("/update", h.Update)
	g.GET("/getbyid/:id", h.GetByID)
	g.GET("/getall", h.GetAll)
	g.DELETE("/delete", h.Delete)
}

func (h *CategoryHandler) Add(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	result, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	result, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		_ = c.Error(apperr.Validation("id must be an integer", "id"))
		return
	}
	result, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	result, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		_ = c.Error(apperr.Validation("id must be an integer", "id"))
		return
	}
	result, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}
