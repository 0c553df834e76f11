package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"
)

const cannedQuizText = `1. Question: What does TCP stand for?
   A) Transmission Control Protocol
   B) Transfer Control Protocol
   C) Transmission Connection Protocol
   D) Transport Control Protocol
   Correct_option: A

2. Question: What is the default HTTP port?
   A) 21
   B) 80
   C) 443
   D) 8080
   Correct_option: B
`

type stubCompletionClient struct {
	text string
	err  error
}

func (s *stubCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func newQuizTestApp(client services.CompletionClient) (*fiber.App, *services.MemorySessionStore) {
	logger := utils.InitLogger()
	store := services.NewMemorySessionStore(time.Minute)
	quizController := NewQuizController(services.NewQuizService(client, store, logger), logger)

	app := fiber.New()
	app.Post("/generate-quiz", quizController.GenerateQuiz)
	app.Post("/submit-quiz", quizController.SubmitQuiz)
	return app, store
}

func TestGenerateQuiz(t *testing.T) {
	app, store := newQuizTestApp(&stubCompletionClient{text: cannedQuizText})
	defer store.Close()

	resp := postJSON(t, app, "/generate-quiz", models.QuizGenerationRequest{
		Domain:       "networking",
		NumQuestions: 2,
		Difficulty:   "easy",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var quiz models.GeneratedQuiz
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&quiz))
	assert.NotEmpty(t, quiz.SessionToken)
	assert.Equal(t, 2, quiz.NumQuestions)
	assert.Len(t, quiz.Questions, 2)
}

func TestGenerateQuizValidation(t *testing.T) {
	app, store := newQuizTestApp(&stubCompletionClient{text: cannedQuizText})
	defer store.Close()

	resp := postJSON(t, app, "/generate-quiz", models.QuizGenerationRequest{
		Domain:       "networking",
		NumQuestions: 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGenerateQuizUpstreamFailure(t *testing.T) {
	app, store := newQuizTestApp(&stubCompletionClient{err: services.ErrUpstream})
	defer store.Close()

	resp := postJSON(t, app, "/generate-quiz", models.QuizGenerationRequest{
		Domain:       "networking",
		NumQuestions: 2,
	})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestGenerateQuizUnparseableResponse(t *testing.T) {
	app, store := newQuizTestApp(&stubCompletionClient{text: "no questions here"})
	defer store.Close()

	resp := postJSON(t, app, "/generate-quiz", models.QuizGenerationRequest{
		Domain:       "networking",
		NumQuestions: 2,
	})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSubmitQuizFlow(t *testing.T) {
	app, store := newQuizTestApp(&stubCompletionClient{text: cannedQuizText})
	defer store.Close()

	resp := postJSON(t, app, "/generate-quiz", models.QuizGenerationRequest{
		Domain:       "networking",
		NumQuestions: 2,
	})
	var quiz models.GeneratedQuiz
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&quiz))

	submit := func() *models.QuizResult {
		body, _ := json.Marshal(models.QuizSubmissionRequest{
			Answers: map[string]string{"1": "a", "2": "C"},
		})
		req := httptest.NewRequest("POST", "/submit-quiz", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionTokenHeader, quiz.SessionToken)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		if resp.StatusCode != fiber.StatusOK {
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			return nil
		}

		var result models.QuizResult
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		return &result
	}

	result := submit()
	if assert.NotNil(t, result) {
		assert.Equal(t, 1, result.Score)
		assert.Equal(t, 2, result.TotalQuestions)
		assert.Equal(t, "Correct", result.Results["1"])
	}

	// The session is consumed: a second submit is rejected.
	assert.Nil(t, submit())
}

func TestSubmitQuizMissingHeader(t *testing.T) {
	app, store := newQuizTestApp(&stubCompletionClient{})
	defer store.Close()

	resp := postJSON(t, app, "/submit-quiz", models.QuizSubmissionRequest{
		Answers: map[string]string{"1": "A"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitQuizUnknownToken(t *testing.T) {
	app, store := newQuizTestApp(&stubCompletionClient{})
	defer store.Close()

	body, _ := json.Marshal(models.QuizSubmissionRequest{
		Answers: map[string]string{"1": "A"},
	})
	req := httptest.NewRequest("POST", "/submit-quiz", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionTokenHeader, "never-issued")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
