package handlers

import (
	"net/http"
	"strconv"

	"trivia-api-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	trivia services.TriviaService
}

func NewCategoryHandler(trivia services.TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

// ListCategories godoc
// @Summary      List all categories
// @Description  Get every category as an id->type map
// @Tags         categories
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.ListCategories()
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"categories":       categoryMap(categories),
		"total_categories": len(categories),
	})
}

// QuestionsByCategory godoc
// @Summary      List questions in a category
// @Description  Page of questions whose category matches the path id. Zero matches is a success, not an error.
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	selection, err := h.trivia.QuestionsByCategory(uint(categoryID))
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        services.PaginateQuestions(selection, pageParam(c)),
		"current_category": categoryID,
		"total_questions":  len(selection),
	})
}

// pageParam reads the 1-based page query parameter. Anything unparseable
// falls back to page 1, mirroring how the legacy API treated bad input.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
