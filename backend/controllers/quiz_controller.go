package controllers

import (
	"errors"
	"log"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionTokenHeader carries the quiz session token on submissions.
const SessionTokenHeader = "X-Session-Token"

type QuizController struct {
	Quiz   *services.QuizService
	Logger *log.Logger
}

func NewQuizController(quiz *services.QuizService, logger *log.Logger) *QuizController {
	return &QuizController{Quiz: quiz, Logger: logger}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates multiple-choice questions for a domain and difficulty
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body models.QuizGenerationRequest true "Generation parameters"
// @Success 200 {object} models.GeneratedQuiz
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /generate-quiz [post]
func (qc *QuizController) GenerateQuiz(c *fiber.Ctx) error {
	var req models.QuizGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if req.Domain == "" || req.NumQuestions < 1 {
		return utils.BadRequest(c, "Domain and a positive num_questions are required")
	}

	quiz, err := qc.Quiz.Generate(c.Context(), req.Domain, req.NumQuestions, req.Difficulty)
	if err != nil {
		if errors.Is(err, services.ErrUpstream) || errors.Is(err, services.ErrNoQuestionsParsed) {
			return utils.InternalServerError(c, "Failed to generate quiz: "+err.Error())
		}
		qc.Logger.Printf("generate quiz: unexpected error: %v", err)
		return utils.InternalServerError(c, "Failed to generate quiz")
	}

	return c.JSON(quiz)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades submitted answers against the stored session
// @Tags quiz
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Quiz session token"
// @Param request body models.QuizSubmissionRequest true "Answers keyed by question number"
// @Success 200 {object} models.QuizResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /submit-quiz [post]
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	token := c.Get(SessionTokenHeader)
	if token == "" {
		return utils.BadRequest(c, "Missing session token header")
	}

	var req models.QuizSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := qc.Quiz.Submit(token, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSession) {
			return utils.BadRequest(c, "Invalid or expired session token")
		}
		qc.Logger.Printf("submit quiz: unexpected error: %v", err)
		return utils.InternalServerError(c, "Failed to submit quiz")
	}

	return c.JSON(result)
}
