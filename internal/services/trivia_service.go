package services

import "trivia-api-backend/internal/models"

// AllCategories is the sentinel category id meaning "no category filter" on
// the quiz endpoint. The frontend sends it as id 0.
const AllCategories uint = 0

type QuestionInput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

type TriviaService interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)

	ListQuestions() ([]models.Question, error)
	SearchQuestions(term string) ([]models.Question, error)
	QuestionsByCategory(categoryID uint) ([]models.Question, error)
	CreateQuestion(input QuestionInput) (*models.Question, error)
	DeleteQuestion(id uint) error
	CountQuestions() (int64, error)

	// NextQuizQuestion picks a uniformly random question from the category
	// (or everything when categoryID is AllCategories), excluding ids in
	// previous. A nil question with a nil error means the pool is exhausted.
	NextQuizQuestion(categoryID uint, previous []uint) (*models.Question, error)
}
