package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"project/backend/models"
)

// QuizService orchestrates quiz generation against the completion API
// and grades submissions against the session store.
type QuizService struct {
	Client CompletionClient
	Store  SessionStore
	Logger *log.Logger
}

func NewQuizService(client CompletionClient, store SessionStore, logger *log.Logger) *QuizService {
	return &QuizService{
		Client: client,
		Store:  store,
		Logger: logger,
	}
}

// Generate builds the prompt, asks the model for questions, parses the
// response and stores it under a fresh session token. The store is not
// touched until the upstream call has completed.
func (s *QuizService) Generate(ctx context.Context, domain string, numQuestions int, difficulty string) (*models.GeneratedQuiz, error) {
	prompt := BuildQuizPrompt(domain, numQuestions, difficulty)

	text, err := s.Client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := ParseQuizText(text)
	if len(questions) == 0 {
		s.Logger.Printf("no questions parsed from completion (domain=%q, len=%d)", domain, len(text))
		return nil, ErrNoQuestionsParsed
	}

	token := NewSessionToken()
	s.Store.Put(token, questions)

	return &models.GeneratedQuiz{
		SessionToken: token,
		Questions:    questions,
		NumQuestions: len(questions),
	}, nil
}

// Submit grades the answers for a session and consumes it. A token can
// be graded at most once: the session is removed before grading, so a
// concurrent or repeated submit fails with ErrInvalidSession.
func (s *QuizService) Submit(token string, answers map[string]string) (*models.QuizResult, error) {
	questions, ok := s.Store.Take(token)
	if !ok {
		return nil, ErrInvalidSession
	}

	score := 0
	results := make(map[string]interface{}, len(questions))

	for idx, q := range questions {
		num := strconv.Itoa(idx + 1)
		answer := answers[num]
		if answer == "" {
			results[num] = "No answer provided"
			continue
		}

		if strings.ToUpper(answer) == q.CorrectOption {
			score++
			results[num] = "Correct"
		} else {
			results[num] = map[string]string{
				"Status":         "Incorrect",
				"Correct Answer": q.CorrectOption,
			}
		}
	}

	return &models.QuizResult{
		Score:          score,
		Results:        results,
		TotalQuestions: len(questions),
	}, nil
}
