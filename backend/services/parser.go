package services

import (
	"bufio"
	"strings"

	"project/backend/models"
)

// optionLabels is the fixed label alphabet questions must use.
var optionLabels = []string{"A", "B", "C", "D"}

const correctMarker = "Correct_option:"

// ParseQuizText recovers structured questions from a block of
// model-generated text. It is best-effort and never fails: malformed
// items are dropped, and the result may be empty. The caller decides
// whether an empty result is an error.
func ParseQuizText(raw string) []models.QuizQuestion {
	text := stripCodeFences(raw)
	text = strings.TrimSpace(text)

	var questions []models.QuizQuestion
	for _, block := range splitQuestionBlocks(text) {
		if q, ok := parseQuestionBlock(block); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

// newLineScanner returns a scanner sized for model responses, whose
// lines can run past bufio's default 64 KB token limit.
func newLineScanner(text string) *bufio.Scanner {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

// stripCodeFences drops markdown fence delimiter lines so that a
// response wrapped in a code block parses the same as a bare one.
func stripCodeFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}

	var b strings.Builder
	scanner := newLineScanner(text)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// splitQuestionBlocks cuts the text into per-question line blocks on
// numbered "N. Question:" boundary lines. Text before the first
// boundary is preamble and is discarded.
func splitQuestionBlocks(text string) [][]string {
	var blocks [][]string
	var current []string
	inBlock := false

	scanner := newLineScanner(text)
	for scanner.Scan() {
		line := scanner.Text()
		if rest, ok := questionBoundary(line); ok {
			if inBlock {
				blocks = append(blocks, current)
			}
			current = []string{rest}
			inBlock = true
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}
	if inBlock {
		blocks = append(blocks, current)
	}
	return blocks
}

// questionBoundary reports whether the line starts a new question:
// one or more digits, a period, optional whitespace, the word
// "Question" with an optional colon. Returns the remainder of the line.
func questionBoundary(line string) (string, bool) {
	s := strings.TrimSpace(line)

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '.' {
		return "", false
	}

	s = strings.TrimLeft(s[i+1:], " \t")
	if !strings.HasPrefix(s, "Question") {
		return "", false
	}
	s = strings.TrimPrefix(s[len("Question"):], ":")
	return s, true
}

// parseQuestionBlock extracts stem, options and the correct label from
// one block. A block is accepted only if the stem is non-empty, all 4
// options are present and the correct label is among them.
func parseQuestionBlock(lines []string) (models.QuizQuestion, bool) {
	var q models.QuizQuestion

	// The stem runs up to the first "A)" line.
	stemEnd := -1
	for i, line := range lines {
		if _, ok := optionLine(line, optionLabels[0]); ok {
			stemEnd = i
			break
		}
	}
	if stemEnd < 0 {
		return q, false
	}
	stem := strings.TrimSpace(strings.Join(lines[:stemEnd], "\n"))
	if stem == "" {
		return q, false
	}

	options := make(map[string]string)
	for _, label := range optionLabels {
		for _, line := range lines {
			if text, ok := optionLine(line, label); ok {
				options[label] = text
				break
			}
		}
	}

	correct, ok := correctOption(lines)
	if !ok {
		return q, false
	}

	if len(options) != len(optionLabels) {
		return q, false
	}
	if _, ok := options[correct]; !ok {
		return q, false
	}

	q.Question = stem
	q.Options = options
	q.CorrectOption = correct
	return q, true
}

// optionLine matches a line of the form "<label>) text" and returns the
// trimmed text.
func optionLine(line, label string) (string, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, label+")") {
		return "", false
	}
	return strings.TrimSpace(s[len(label)+1:]), true
}

// correctOption finds the "Correct_option: X" marker line and returns
// the label character.
func correctOption(lines []string) (string, bool) {
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if !strings.HasPrefix(s, correctMarker) {
			continue
		}
		s = strings.TrimSpace(s[len(correctMarker):])
		if s == "" {
			return "", false
		}
		return s[:1], true
	}
	return "", false
}
