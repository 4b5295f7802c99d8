package handlers

import (
	"net/http"
	"strconv"

	"trivia-api-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	trivia services.TriviaService
}

func NewQuestionHandler(trivia services.TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

// QuestionBody covers both shapes POST /questions accepts: a search when
// searchTerm is present and non-empty, a new question otherwise. Pointer
// fields keep absent and empty distinguishable; missing question fields are
// stored as zero values without validation, as the legacy API did.
type QuestionBody struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	Category   *uint   `json:"category"`
	SearchTerm *string `json:"searchTerm"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Page of all questions plus the category map. A page past the end is a 404.
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	selection, err := h.trivia.ListQuestions()
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	current := services.PaginateQuestions(selection, pageParam(c))
	if len(current) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	categories, err := h.trivia.ListCategories()
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        current,
		"total_questions":  len(selection),
		"categories":       categoryMap(categories),
		"current_category": "all",
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Description  Deletes by id, then returns the refreshed page and total. A missing id is a 422, kept from the legacy API.
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} map[string]interface{}
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	if err := h.trivia.DeleteQuestion(uint(questionID)); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	selection, err := h.trivia.ListQuestions()
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"deleted_question":  questionID,
		"current_questions": services.PaginateQuestions(selection, pageParam(c)),
		"total_questions":   len(selection),
	})
}

// CreateOrSearchQuestions godoc
// @Summary      Create a question or search questions
// @Description  Searches when the body carries a non-empty searchTerm, creates a question otherwise. Search takes priority.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body QuestionBody true "Search term or new question fields"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      405 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var body QuestionBody
	// An unparseable body was a 405 in the legacy API, not a 400.
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusMethodNotAllowed)
		return
	}

	if body.SearchTerm != nil && *body.SearchTerm != "" {
		h.searchQuestions(c, *body.SearchTerm)
		return
	}
	h.createQuestion(c, body)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	selection, err := h.trivia.SearchQuestions(term)
	if err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	// Zero matches is a success with an empty list.
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        services.PaginateQuestions(selection, pageParam(c)),
		"total_questions":  len(selection),
		"current_category": "all",
	})
}

func (h *QuestionHandler) createQuestion(c *gin.Context, body QuestionBody) {
	input := services.QuestionInput{}
	if body.Question != nil {
		input.Question = *body.Question
	}
	if body.Answer != nil {
		input.Answer = *body.Answer
	}
	if body.Difficulty != nil {
		input.Difficulty = *body.Difficulty
	}
	if body.Category != nil {
		input.Category = *body.Category
	}

	question, err := h.trivia.CreateQuestion(input)
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	total, err := h.trivia.CountQuestions()
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"created_question_id": question.ID,
		"total_questions":     total,
	})
}
