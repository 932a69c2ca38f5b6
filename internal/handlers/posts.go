package handlers

import (
	"net/http"
	"strings"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostHandlers serves /api/posts. It consults the user repository for the
// cross-entity author checks.
type PostHandlers struct {
	posts *repository.PostRepository
	users *repository.UserRepository
}

func NewPostHandlers(posts *repository.PostRepository, users *repository.UserRepository) *PostHandlers {
	return &PostHandlers{posts: posts, users: users}
}

// Register attaches the post routes to the given group.
func (h *PostHandlers) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/user/:user_id", h.ListByUser)
}

// List returns posts newest first, optionally only published ones.
func (h *PostHandlers) List(c *gin.Context) {
	params := parseListQueryParams(
		c.Query("limit"),
		c.Query("offset"),
		c.Query("published_only"),
		defaultPageLimit,
		0,
	)

	posts, err := h.posts.List(params.Limit, params.Offset, params.PublishedOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Create publishes a new post. The author id travels out-of-band as a query
// parameter and must name an existing user; a missing author is a bad
// request, not a not-found, since the post is the resource being addressed.
func (h *PostHandlers) Create(c *gin.Context) {
	rawAuthorID := strings.TrimSpace(c.Query("author_id"))
	if rawAuthorID == "" {
		writeError(c, apperr.BadRequest("author_id query parameter is required"))
		return
	}

	authorID, err := uuid.Parse(rawAuthorID)
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid author_id"))
		return
	}

	var req models.CreatePostRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	author, err := h.users.FindByID(authorID)
	if err != nil {
		writeError(c, err)
		return
	}
	if author == nil {
		writeError(c, apperr.BadRequest("User with id %s does not exist", authorID))
		return
	}

	post, err := h.posts.Create(req, authorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Get returns a single post by id.
func (h *PostHandlers) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid post ID"))
		return
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeError(c, apperr.NotFound("Post with id %s not found", id))
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update applies a partial update to a post.
func (h *PostHandlers) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid post ID"))
		return
	}

	var req models.UpdatePostRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	post, err := h.posts.Update(id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeError(c, apperr.NotFound("Post with id %s not found", id))
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post by id.
func (h *PostHandlers) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid post ID"))
		return
	}

	deleted, err := h.posts.Delete(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		writeError(c, apperr.NotFound("Post with id %s not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// ListByUser returns a user's posts newest first. Here the user is the
// addressed resource, so a missing user is a not-found.
func (h *PostHandlers) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		writeError(c, apperr.BadRequest("Invalid user ID"))
		return
	}

	params := parseListQueryParams(
		c.Query("limit"),
		c.Query("offset"),
		"",
		defaultPageLimit,
		0,
	)

	user, err := h.users.FindByID(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		writeError(c, apperr.NotFound("User with id %s not found", userID))
		return
	}

	posts, err := h.posts.FindByAuthor(userID, params.Limit, params.Offset)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
