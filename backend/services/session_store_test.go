package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"project/backend/models"
)

func sampleQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			Question:      "First?",
			Options:       map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"},
			CorrectOption: "B",
		},
	}
}

func TestMemorySessionStoreTakeIsSingleUse(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	defer store.Close()

	token := NewSessionToken()
	store.Put(token, sampleQuestions())

	questions, ok := store.Take(token)
	assert.True(t, ok)
	assert.Len(t, questions, 1)

	_, ok = store.Take(token)
	assert.False(t, ok)
}

func TestMemorySessionStoreUnknownToken(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	defer store.Close()

	_, ok := store.Take("never-issued")
	assert.False(t, ok)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(10 * time.Millisecond)
	defer store.Close()

	token := NewSessionToken()
	store.Put(token, sampleQuestions())

	time.Sleep(30 * time.Millisecond)

	_, ok := store.Take(token)
	assert.False(t, ok)
}

func TestNewSessionTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := NewSessionToken()
		assert.False(t, seen[token])
		seen[token] = true
	}
}
