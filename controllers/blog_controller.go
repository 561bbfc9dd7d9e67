package controllers

import (
	"net/http"
	"strconv"

	"studio-service/middleware"
	"studio-service/models"
	"studio-service/services"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	service *services.BlogService
}

func NewBlogController(service *services.BlogService) *BlogController {
	return &BlogController{service: service}
}

// ListPosts runs the filter/sort/paginate pipeline
func (bc *BlogController) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	query := services.BlogQuery{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Sort:     models.BlogSortMode(c.DefaultQuery("sort", string(models.SortLatest))),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := bc.service.Page(c.Request.Context(), middleware.SessionID(c), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListCategories returns the fixed category filter list
func (bc *BlogController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": bc.service.Categories()})
}

// ToggleLike flips the viewer's like on a post
func (bc *BlogController) ToggleLike(c *gin.Context) {
	view, err := bc.service.ToggleLike(c.Request.Context(), middleware.SessionID(c), c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleSave flips the viewer's bookmark on a post
func (bc *BlogController) ToggleSave(c *gin.Context) {
	view, err := bc.service.ToggleSave(c.Request.Context(), middleware.SessionID(c), c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
