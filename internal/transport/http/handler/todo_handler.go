package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"go-todo-api/internal/apperr"
	"go-todo-api/internal/dto"
	"go-todo-api/internal/service"
	mdw "go-todo-api/internal/transport/http/middleware"
)

type ToDoHandler struct {
	svc *service.ToDoService
}

func NewToDoHandler(svc *service.ToDoService) *ToDoHandler {
	return &ToDoHandler{svc: svc}
}

func (h *ToDoHandler) Mount(g *gin.RouterGroup, adminRole string) {
	g.POST("/add", h.Add)
	g.PUT("/update", h.Update)
	g.GET("/getbyid/:id", mdw.RequireRole(adminRole), h.GetByID)
	g.GET("/getall", h.GetAll)
	g.GET("/getallByCategory", h.GetAllByCategory)
	g.GET("/getallByTitleContains", h.GetAllByTitleContains)
	g.GET("/getallByEndDate", h.GetAllByEndDate)
	g.GET("/getallByPriority", h.GetAllByPriority)
	g.GET("/getallCompleted", h.GetAllCompleted)
	g.GET("/getallByDateRange", h.GetAllByDateRange)
	g.GET("/getTodayTasks", h.GetTodayTasks)
	g.DELETE("/delete", h.Delete)
}

func (h *ToDoHandler) Add(c *gin.Context) {
	var req dto.CreateToDoRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	result, err := h.svc.Add(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) Update(c *gin.Context) {
	var req dto.UpdateToDoRequest
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

func (h *ToDoHandler) GetByID(c *gin.Context) {
	result, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetAll(c *gin.Context) {
	result, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetAllByCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		_ = c.Error(apperr.Validation("id must be an integer", "id"))
		return
	}
	result, err := h.svc.GetAllByCategory(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetAllByTitleContains(c *gin.Context) {
	result, err := h.svc.GetAllByTitleContains(c.Request.Context(), c.Query("text"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetAllByEndDate(c *gin.Context) {
	result, err := h.svc.GetAllByEndDate(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetAllByPriority(c *gin.Context) {
	result, err := h.svc.GetAllByPriority(c.Request.Context(), c.Query("text"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetAllCompleted(c *gin.Context) {
	result, err := h.svc.GetAllCompleted(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetAllByDateRange(c *gin.Context) {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		_ = c.Error(apperr.Validation("startDate must be a date", "startDate"))
		return
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		_ = c.Error(apperr.Validation("endDate must be a date", "endDate"))
		return
	}
	result, err := h.svc.GetAllByDateRange(c.Request.Context(), start, end)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) GetTodayTasks(c *gin.Context) {
	result, err := h.svc.GetTodayTasks(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(result.StatusCode, result)
}

func (h *ToDoHandler) Delete(c *gin.Context) {
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
