package services

import (
	"errors"
	"math/rand"

	"trivia-api-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type triviaService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTriviaService(db *gorm.DB, log *zap.Logger) TriviaService {
	return &triviaService{db: db, log: log}
}

func (s *triviaService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *triviaService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *triviaService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *triviaService) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("id ASC").
		Where("question ILIKE ?", "%"+term+"%").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *triviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("id ASC").
		Where("category = ?", categoryID).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *triviaService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		Category:   input.Category,
	}
	if err := s.db.Create(&question).Error; err != nil {
		s.log.Warn("question insert failed", zap.Error(err))
		return nil, err
	}
	return &question, nil
}

func (s *triviaService) DeleteQuestion(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return s.db.Delete(&question).Error
}

func (s *triviaService) CountQuestions() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *triviaService) NextQuizQuestion(categoryID uint, previous []uint) (*models.Question, error) {
	var pool []models.Question
	query := s.db.Order("id ASC")
	if categoryID != AllCategories {
		query = query.Where("category = ?", categoryID)
	}
	if err := query.Find(&pool).Error; err != nil {
		return nil, err
	}

	eligible := excludeSeen(pool, previous)
	if len(eligible) == 0 {
		return nil, nil
	}

	picked := eligible[rand.Intn(len(eligible))]
	return &picked, nil
}

// excludeSeen drops every question whose id appears in previous.
func excludeSeen(pool []models.Question, previous []uint) []models.Question {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	eligible := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}
	return eligible
}
