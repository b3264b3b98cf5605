package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-todo-api/internal/core/auth"
	"go-todo-api/internal/domain"
	"go-todo-api/internal/transport/http/handler"
	mdw "go-todo-api/internal/transport/http/middleware"
)

func NewAPIEngine(
	l *zap.Logger,
	jwter *auth.JWTer,
	categories *handler.CategoryHandler,
	todos *handler.ToDoHandler,
	users *handler.UserHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
		cors.Default(),
		mdw.ErrorHandler(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	u := api.Group("/users")
	u.POST("/create", users.Register)
	u.POST("/login", users.Login)
	u.GET("/email", mdw.AuthJWT(jwter, domain.RoleAdmin), users.GetByEmail)
	u.PUT("/update", mdw.AuthJWT(jwter, domain.RoleAdmin, domain.RoleUser), users.Update)
	u.PUT("/changepassword", mdw.AuthJWT(jwter, domain.RoleAdmin, domain.RoleUser), users.ChangePassword)
	u.DELETE("/delete", mdw.AuthJWT(jwter, domain.RoleAdmin, domain.RoleUser), users.Delete)

	cat := api.Group("/categories", mdw.AuthJWT(jwter, domain.RoleAdmin))
	categories.Mount(cat)

	td := api.Group("/todos", mdw.AuthJWT(jwter, domain.RoleAdmin, domain.RoleUser))
	todos.Mount(td, domain.RoleAdmin)

	return r
}
