package handlers

import (
	"fmt"

	"trivia-api-backend/internal/models"
	"trivia-api-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type mockTriviaService struct {
	mock.Mock
}

func (m *mockTriviaService) ListCategories() ([]models.Category, error) {
	args := m.Called()
	cats, _ := args.Get(0).([]models.Category)
	return cats, args.Error(1)
}

func (m *mockTriviaService) GetCategory(id uint) (*models.Category, error) {
	args := m.Called(id)
	cat, _ := args.Get(0).(*models.Category)
	return cat, args.Error(1)
}

func (m *mockTriviaService) ListQuestions() ([]models.Question, error) {
	args := m.Called()
	qs, _ := args.Get(0).([]models.Question)
	return qs, args.Error(1)
}

func (m *mockTriviaService) SearchQuestions(term string) ([]models.Question, error) {
	args := m.Called(term)
	qs, _ := args.Get(0).([]models.Question)
	return qs, args.Error(1)
}

func (m *mockTriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	args := m.Called(categoryID)
	qs, _ := args.Get(0).([]models.Question)
	return qs, args.Error(1)
}

func (m *mockTriviaService) CreateQuestion(input services.QuestionInput) (*models.Question, error) {
	args := m.Called(input)
	q, _ := args.Get(0).(*models.Question)
	return q, args.Error(1)
}

func (m *mockTriviaService) DeleteQuestion(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockTriviaService) CountQuestions() (int64, error) {
	args := m.Called()
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *mockTriviaService) NextQuizQuestion(categoryID uint, previous []uint) (*models.Question, error) {
	args := m.Called(categoryID, previous)
	q, _ := args.Get(0).(*models.Question)
	return q, args.Error(1)
}

func setupRouter(svc services.TriviaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	categoryHandler := NewCategoryHandler(svc)
	questionHandler := NewQuestionHandler(svc)
	quizHandler := NewQuizHandler(svc)

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateOrSearchQuestions)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}

func questionFixtures(n int) []models.Question {
	qs := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, models.Question{
			ID:         uint(i),
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   uint(i%3 + 1),
			Difficulty: i%5 + 1,
		})
	}
	return qs
}

func categoryFixtures() []models.Category {
	return []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}
}
