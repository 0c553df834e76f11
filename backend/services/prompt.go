package services

import "fmt"

// BuildQuizPrompt renders the generation parameters into the instruction
// template sent to the model. The format it mandates is the one
// ParseQuizText understands: 4 options labeled A-D and a
// "Correct_option:" marker line per question.
func BuildQuizPrompt(domain string, numQuestions int, difficulty string) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice questions in the domain of %s "+
			"with difficulty %s (easy, intermediate, hard). "+
			"Each question should have 4 options: A, B, C, D. "+
			"Include the correct option labeled as 'Correct_option: [A/B/C/D]'. "+
			"Do not include extra explanations or code blocks. "+
			"Example format:\n\n"+
			"1. Question: [text]\n"+
			"   A) Option A\n"+
			"   B) Option B\n"+
			"   C) Option C\n"+
			"   D) Option D\n"+
			"   Correct_option: B\n\n"+
			"Continue similarly for all questions.",
		numQuestions, domain, difficulty,
	)
}
