package services

import "trivia-api-backend/internal/models"

// QuestionsPerPage is the fixed page size used by every paginated listing.
const QuestionsPerPage = 10

// PaginateQuestions returns the 1-based page of an already ordered result
// set. Pages past the end come back empty; callers decide whether that is an
// error for their endpoint.
func PaginateQuestions(questions []models.Question, page int) []models.Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []models.Question{}
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
