package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"usersvc/internal/apperr"
	"usersvc/internal/domain"
	"usersvc/internal/service"
)

// Handler wires HTTP routes to the user service.
type Handler struct {
	users  service.UserService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		logger: logger,
	}
}

// RegisterRoutes binds the five CRUD routes. The router does dispatch and
// dependency injection only; no business logic lives here.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/users", h.listUsers)
	router.POST("/users", h.createUser)
	router.GET("/users/:id", h.getUser)
	router.PUT("/users/:id", h.updateUser)
	router.DELETE("/users/:id", h.deleteUser)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) createUser(c *gin.Context) {
	var input domain.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.writeError(c, apperr.BadRequest("invalid request body"))
		return
	}

	user, err := h.users.Create(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var input domain.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.writeError(c, apperr.BadRequest("invalid request body"))
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(c, apperr.BadRequest("invalid user id"))
		return 0, false
	}
	return id, true
}

// writeError is the single translation point from the error taxonomy to a
// wire response. Store failure causes are logged here and never reach the
// client.
func (h *Handler) writeError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.StoreFailure(err)
	}

	switch appErr.Kind {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
	case apperr.KindBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
	default:
		h.logger.WithError(err).Error("store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": appErr.Message})
	}
}
