package httpapi

import "exam-simulator/internal/exam"

type createAttemptRequest struct {
	Mode            string   `json:"mode"`
	Total           int      `json:"total"`
	DurationMinutes int      `json:"duration_minutes"`
	Disciplines     []string `json:"disciplines"`
	Distribution    string   `json:"distribution"`
}

type attemptQuestionResponse struct {
	ID      string        `json:"id"`
	Index   int           `json:"index"`
	Stem    string        `json:"stem"`
	Options []exam.Option `json:"options"`
}

type policyFlagsResponse struct {
	ShuffleOptions      bool `json:"shuffle_options"`
	HideAnswerKey       bool `json:"hide_answer_key"`
	AutoFinishOnTimeout bool `json:"auto_finish_on_timeout"`
	LockOnFinish        bool `json:"lock_on_finish"`
}

// attemptResponse never carries correct labels; the answer key stays hidden
// until the report.
type attemptResponse struct {
	ID              string                    `json:"id"`
	Mode            string                    `json:"mode"`
	Status          string                    `json:"status"`
	StartedAt       string                    `json:"started_at"`
	EndsAt          string                    `json:"ends_at"`
	DurationMinutes int                       `json:"duration_minutes"`
	Total           int                       `json:"total"`
	Disciplines     []string                  `json:"disciplines"`
	Policy          policyFlagsResponse       `json:"policy"`
	Questions       []attemptQuestionResponse `json:"questions"`
	Answers         map[string]string         `json:"answers,omitempty"`
}

type attemptSummaryResponse struct {
	ID              string `json:"id"`
	Mode            string `json:"mode"`
	Status          string `json:"status"`
	StartedAt       string `json:"started_at"`
	EndsAt          string `json:"ends_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Total           int    `json:"total"`
}

type attemptListResponse struct {
	Attempts []attemptSummaryResponse `json:"attempts"`
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Option     string `json:"option"`
}

type reportQuestionResponse struct {
	Index         int    `json:"index"`
	QuestionID    string `json:"question_id"`
	Stem          string `json:"stem"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

type reportResponse struct {
	AttemptID      string                   `json:"attempt_id"`
	Score          float64                  `json:"score"`
	CorrectCount   int                      `json:"correct_count"`
	Total          int                      `json:"total"`
	ElapsedSeconds int                      `json:"elapsed_seconds"`
	Questions      []reportQuestionResponse `json:"questions"`
}

type disciplineResponse struct {
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

type disciplinesResponse struct {
	Disciplines []disciplineResponse `json:"disciplines"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}
