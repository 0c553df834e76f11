package routes

import (
	"log"
	"time"

	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
	"project/backend/repository"
	"project/backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	users := repository.NewGormUserStore(db)
	sessions := services.NewMemorySessionStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	quizService := services.NewQuizService(services.NewGroqClient(cfg), sessions, logger)

	// Auth routes
	authController := controllers.NewAuthController(users, cfg)
	app.Post("/register", authController.Register)
	app.Post("/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	app.Get("/user-info", authMiddleware, authController.UserInfo)

	// Quiz routes
	quizController := controllers.NewQuizController(quizService, logger)
	app.Post("/generate-quiz", quizController.GenerateQuiz)
	app.Post("/submit-quiz", quizController.SubmitQuiz)
}
