package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"exam-simulator/internal/exam"
)

func (a *API) HandleAttempts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.handleCreateAttempt(w, r)
	case http.MethodGet:
		a.handleListAttempts(w, r)
	default:
		writeMethodNotAllowed(w, "GET, POST")
	}
}

func (a *API) handleCreateAttempt(w http.ResponseWriter, r *http.Request) {
	ownerID := currentUserID(r)
	if ownerID == "" {
		writeUnauthorized(w)
		return
	}

	defer r.Body.Close()
	var request createAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	attempt, err := a.service.CreateAttempt(r.Context(), ownerID, exam.CreateRequest{
		Mode:            exam.Mode(strings.TrimSpace(request.Mode)),
		Total:           request.Total,
		DurationMinutes: request.DurationMinutes,
		Disciplines:     request.Disciplines,
		Distribution:    exam.Distribution(strings.TrimSpace(request.Distribution)),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, a.toAttemptResponse(attempt, nil))
}

func (a *API) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	ownerID := currentUserID(r)
	if ownerID == "" {
		writeUnauthorized(w)
		return
	}

	summaries, err := a.service.ListAttempts(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := attemptListResponse{
		Attempts: make([]attemptSummaryResponse, 0, len(summaries)),
	}
	for _, summary := range summaries {
		response.Attempts = append(response.Attempts, attemptSummaryResponse{
			ID:              summary.ID,
			Mode:            string(summary.Mode),
			Status:          string(summary.Status),
			StartedAt:       a.formatTime(summary.StartedAt),
			EndsAt:          a.formatTime(summary.EndsAt),
			DurationMinutes: summary.DurationMinutes,
			Total:           summary.Total,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleGetAttempt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	ownerID := currentUserID(r)
	if ownerID == "" {
		writeUnauthorized(w)
		return
	}

	attemptID := strings.TrimSpace(r.PathValue("attempt_id"))
	attempt, answers, err := a.service.GetAttempt(r.Context(), ownerID, attemptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a.toAttemptResponse(attempt, answers))
}

func (a *API) HandleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	ownerID := currentUserID(r)
	if ownerID == "" {
		writeUnauthorized(w)
		return
	}

	defer r.Body.Close()
	var request submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	attemptID := strings.TrimSpace(r.PathValue("attempt_id"))
	err := a.service.SubmitAnswer(r.Context(), ownerID, attemptID, strings.TrimSpace(request.QuestionID), request.Option)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (a *API) HandleFinishAttempt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	ownerID := currentUserID(r)
	if ownerID == "" {
		writeUnauthorized(w)
		return
	}

	attemptID := strings.TrimSpace(r.PathValue("attempt_id"))
	report, err := a.service.FinishAttempt(r.Context(), ownerID, attemptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (a *API) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	ownerID := currentUserID(r)
	if ownerID == "" {
		writeUnauthorized(w)
		return
	}

	attemptID := strings.TrimSpace(r.PathValue("attempt_id"))
	report, err := a.service.GetReport(r.Context(), ownerID, attemptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (a *API) HandleDisciplines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	disciplines := a.catalog.Disciplines()
	response := disciplinesResponse{
		Disciplines: make([]disciplineResponse, 0, len(disciplines)),
	}
	for _, discipline := range disciplines {
		response.Disciplines = append(response.Disciplines, disciplineResponse{
			Name:          discipline.Name,
			QuestionCount: len(discipline.Questions),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleReloadPool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.reload == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "pool reload unavailable"})
		return
	}

	if err := a.reload(); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to reload pool"})
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
