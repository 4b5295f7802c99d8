package main

import (
	"net/http"

	"trivia-api-backend/internal/config"
	"trivia-api-backend/internal/database"
	"trivia-api-backend/internal/handlers"
	"trivia-api-backend/internal/logger"
	"trivia-api-backend/internal/services"

	_ "trivia-api-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     Backend for the trivia game: categories, paginated questions, search and quiz play
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	db := database.Connect(cfg, log)
	database.AutoMigrate(db, log)
	database.Seed(db, log)

	triviaService := services.NewTriviaService(db, log)

	categoryHandler := handlers.NewCategoryHandler(triviaService)
	questionHandler := handlers.NewQuestionHandler(triviaService)
	quizHandler := handlers.NewQuizHandler(triviaService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Connectivity probe kept from the original frontend's setup checks.
	r.GET("/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "hello"})
	})

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateOrSearchQuestions)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)

	r.POST("/quizzes", quizHandler.NextQuestion)

	log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
