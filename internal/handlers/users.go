package handlers

import (
	"net/http"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandlers serves /api/users. Built once per process over the shared
// repository.
type UserHandlers struct {
	users *repository.UserRepository
}

func NewUserHandlers(users *repository.UserRepository) *UserHandlers {
	return &UserHandlers{users: users}
}

// Register attaches the user routes to the given group.
func (h *UserHandlers) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns users newest first.
func (h *UserHandlers) List(c *gin.Context) {
	params := parseListQueryParams(
		c.Query("limit"),
		c.Query("offset"),
		"",
		defaultPageLimit,
		0,
	)

	users, err := h.users.List(params.Limit, params.Offset)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Create registers a new user. The email must be currently unused; the
// unique constraint backs the check up under concurrency.
func (h *UserHandlers) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	existing, err := h.users.FindByEmail(req.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	if existing != nil {
		writeError(c, apperr.Conflict("User with this email already exists"))
		return
	}

	user, err := h.users.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Get returns a single user by id.
func (h *UserHandlers) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid user ID"))
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		writeError(c, apperr.NotFound("User with id %s not found", id))
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update applies a partial update; fields absent from the body keep their
// current values.
func (h *UserHandlers) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid user ID"))
		return
	}

	var req models.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.users.Update(id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		writeError(c, apperr.NotFound("User with id %s not found", id))
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user by id.
func (h *UserHandlers) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid user ID"))
		return
	}

	deleted, err := h.users.Delete(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		writeError(c, apperr.NotFound("User with id %s not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
