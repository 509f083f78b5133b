package httpapi

import (
	"net/http"
	"time"

	"exam-simulator/internal/exam"
)

func NewRouter(service *exam.Service, catalog *exam.Catalog, reload ReloadFunc, location *time.Location) http.Handler {
	api := NewAPI(service, catalog, reload, location)

	mux := http.NewServeMux()
	mux.HandleFunc("/attempts", api.HandleAttempts)
	mux.HandleFunc("/attempts/{attempt_id}", api.HandleGetAttempt)
	mux.HandleFunc("/attempts/{attempt_id}/answers", api.HandleSubmitAnswer)
	mux.HandleFunc("/attempts/{attempt_id}/finish", api.HandleFinishAttempt)
	mux.HandleFunc("/attempts/{attempt_id}/report", api.HandleGetReport)
	mux.HandleFunc("/disciplines", api.HandleDisciplines)
	mux.HandleFunc("/pool/reload", api.HandleReloadPool)

	return mux
}
