package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"exam-simulator/internal/exam"
)

// localTimeLayout is ISO-8601 without a UTC offset: timestamps are exchanged
// as local-civil time in the configured zone.
const localTimeLayout = "2006-01-02T15:04:05"

func (a *API) formatTime(t time.Time) string {
	return t.In(a.location).Format(localTimeLayout)
}

// currentUserID resolves the owner from the identity collaborator's header.
func currentUserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-ID"))
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exam.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, exam.ErrAttemptNotFound), errors.Is(err, exam.ErrQuestionNotInAttempt):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, exam.ErrAttemptNotActive),
		errors.Is(err, exam.ErrAlreadyFinished),
		errors.Is(err, exam.ErrReportNotReady):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, exam.ErrInsufficientPool):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, exam.ErrTimeExpired):
		writeJSON(w, http.StatusGone, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func (a *API) toAttemptResponse(attempt exam.Attempt, answers map[string]exam.AnswerEntry) attemptResponse {
	questions := make([]attemptQuestionResponse, 0, len(attempt.Questions))
	for _, question := range attempt.Questions {
		questions = append(questions, attemptQuestionResponse{
			ID:      question.ID,
			Index:   question.Index,
			Stem:    question.Stem,
			Options: question.Options,
		})
	}

	policy := a.service.Policy()
	response := attemptResponse{
		ID:              attempt.ID,
		Mode:            string(attempt.Mode),
		Status:          string(attempt.Status),
		StartedAt:       a.formatTime(attempt.StartedAt),
		EndsAt:          a.formatTime(attempt.EndsAt),
		DurationMinutes: attempt.DurationMinutes,
		Total:           attempt.Total,
		Disciplines:     attempt.Disciplines,
		Policy: policyFlagsResponse{
			ShuffleOptions:      policy.ShuffleOptions,
			HideAnswerKey:       policy.HideAnswerKey,
			AutoFinishOnTimeout: policy.AutoFinishOnTimeout,
			LockOnFinish:        policy.LockOnFinish,
		},
		Questions: questions,
	}

	if answers != nil {
		response.Answers = make(map[string]string, len(answers))
		for questionID, entry := range answers {
			response.Answers[questionID] = entry.Letter
		}
	}
	return response
}

func toReportResponse(report exam.Report) reportResponse {
	questions := make([]reportQuestionResponse, 0, len(report.Questions))
	for _, question := range report.Questions {
		questions = append(questions, reportQuestionResponse{
			Index:         question.Index,
			QuestionID:    question.QuestionID,
			Stem:          question.Stem,
			YourAnswer:    question.YourAnswer,
			CorrectAnswer: question.CorrectLabel,
			Correct:       question.Correct,
		})
	}

	return reportResponse{
		AttemptID:      report.AttemptID,
		Score:          report.Score,
		CorrectCount:   report.CorrectCount,
		Total:          report.Total,
		ElapsedSeconds: report.ElapsedSeconds,
		Questions:      questions,
	}
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethods string) {
	w.Header().Set("Allow", allowedMethods)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing user identity"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
