package handlers

import (
	"net/http"

	"trivia-api-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	trivia services.TriviaService
}

func NewQuizHandler(trivia services.TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

type QuizCategory struct {
	Type string `json:"type" example:"Science"`
	ID   uint   `json:"id" example:"1"`
}

type QuizRequest struct {
	QuizCategory      QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint       `json:"previous_questions"`
}

// NextQuestion godoc
// @Summary      Get the next quiz question
// @Description  Picks a random question from the chosen category (id 0 means all) that is not in previous_questions. A null question means the pool is exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Category and previously seen question ids"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	categoryID := req.QuizCategory.ID
	if categoryID != services.AllCategories {
		// Unknown category is a 400, as is any lookup failure.
		if _, err := h.trivia.GetCategory(categoryID); err != nil {
			respondError(c, http.StatusBadRequest)
			return
		}
	}

	question, err := h.trivia.NextQuizQuestion(categoryID, req.PreviousQuestions)
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	if question == nil {
		// Pool exhausted: the frontend treats a null question as game over.
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"question": nil,
			"category": categoryID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
		"category": question.Category,
	})
}
