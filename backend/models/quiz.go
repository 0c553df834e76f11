package models

// QuizQuestion is a single multiple-choice question recovered from the
// model response. CorrectOption is always one of the Options keys.
type QuizQuestion struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"correct_option"`
}

type QuizGenerationRequest struct {
	Domain       string `json:"domain" example:"computer networks"`
	NumQuestions int    `json:"num_questions" example:"5" minimum:"1"`
	Difficulty   string `json:"difficulty" example:"intermediate" enums:"easy,intermediate,hard"`
}

type QuizSubmissionRequest struct {
	// Answers is keyed by 1-based question number ("1", "2", ...), the
	// value is the chosen option label.
	Answers map[string]string `json:"answers"`
}

type GeneratedQuiz struct {
	SessionToken string         `json:"session_token"`
	Questions    []QuizQuestion `json:"questions"`
	NumQuestions int            `json:"num_questions"`
}

type QuizResult struct {
	Score          int                    `json:"score"`
	Results        map[string]interface{} `json:"results"`
	TotalQuestions int                    `json:"total_questions"`
}
