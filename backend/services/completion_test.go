package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"project/backend/config"
)

func groqTestConfig(url string) *config.Config {
	return &config.Config{
		GroqAPIKey: "test-key",
		GroqAPIURL: url,
		Model:      "test-model",
	}
}

func TestGroqClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message ChatMessage `json:"message"`
			}{
				{Message: ChatMessage{Role: "assistant", Content: "generated text"}},
			},
		})
	}))
	defer srv.Close()

	client := NewGroqClient(groqTestConfig(srv.URL))
	text, err := client.Complete(context.Background(), "prompt")
	assert.NoError(t, err)
	assert.Equal(t, "generated text", text)
}

func TestGroqClientCompleteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGroqClient(groqTestConfig(srv.URL))
	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGroqClientCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatCompletionResponse{})
	}))
	defer srv.Close()

	client := NewGroqClient(groqTestConfig(srv.URL))
	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUpstream)
}
