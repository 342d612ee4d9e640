package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-user-api/internal/domain"
	resp "go-user-api/internal/transport/http/response"
)

func init() {
	// 422 违规列表里用 json 字段名而不是 Go 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

type UserHandler struct {
	svc domain.UserService
	log *zap.Logger
}

func NewUserHandler(svc domain.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/users")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

type createRequest struct {
	Username  string      `json:"username" binding:"required"`
	Email     string      `json:"email" binding:"required,email"`
	FirstName string      `json:"first_name" binding:"required"`
	LastName  string      `json:"last_name" binding:"required"`
	Role      domain.Role `json:"role" binding:"required,oneof=admin user guest"`
	Active    *bool       `json:"active"`
}

type updateRequest struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      domain.Role `json:"role" binding:"omitempty,oneof=admin user guest"`
	Active    bool        `json:"active"`
}

type listQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1"`
}

func (h *UserHandler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(resp.FromBindError(err))
		return
	}
	u, err := h.svc.Create(c.Request.Context(), domain.NewUser{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Active:    req.Active,
	})
	if err != nil {
		c.JSON(resp.FromError(err))
		return
	}
	c.JSON(http.StatusCreated, resp.Success(u, "User created successfully."))
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.Success(u, "User fetched successfully."))
}

func (h *UserHandler) list(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(resp.FromBindError(err))
		return
	}
	users, total, err := h.svc.ListPage(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		c.JSON(resp.FromError(err))
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, resp.Page(users, total, q.Page, q.Limit, "Users fetched successfully."))
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(resp.FromBindError(err))
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, domain.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Active:    req.Active,
	})
	if err != nil {
		c.JSON(resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.Success(u, "User updated successfully."))
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.Success(nil, "User deleted successfully."))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(resp.Violation("id", "value is not a valid integer"))
		return 0, false
	}
	return id, true
}
