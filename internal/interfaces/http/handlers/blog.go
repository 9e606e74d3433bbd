// internal/interfaces/http/handlers/blog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/blog"
	"github.com/gin-gonic/gin"
)

// BlogHandler handles health article endpoints
type BlogHandler struct {
	blog *blog.Service
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *blog.Service) *BlogHandler {
	return &BlogHandler{blog: blogService}
}

// GetPosts handles GET /blog
func (h *BlogHandler) GetPosts(c *gin.Context) {
	posts := h.blog.List(c.Query("search"), c.Query("category"))
	if posts == nil {
		posts = []blog.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Posts retrieved successfully",
		"data":    posts,
	})
}

// GetPost handles GET /blog/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve post",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post retrieved successfully",
		"data":    post,
	})
}

// GetCategories handles GET /blog/categories
func (h *BlogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.blog.Categories(),
	})
}
