package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuizPrompt(t *testing.T) {
	prompt := BuildQuizPrompt("philosophy", 5, "hard")

	assert.Contains(t, prompt, "Generate 5 multiple-choice questions")
	assert.Contains(t, prompt, "domain of philosophy")
	assert.Contains(t, prompt, "difficulty hard")
	assert.Contains(t, prompt, "4 options: A, B, C, D")
	assert.Contains(t, prompt, "Correct_option:")
	assert.Contains(t, prompt, "Do not include extra explanations or code blocks")

	// Deterministic for fixed inputs.
	assert.Equal(t, prompt, BuildQuizPrompt("philosophy", 5, "hard"))
}
