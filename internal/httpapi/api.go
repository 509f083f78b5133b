package httpapi

import (
	"time"

	"exam-simulator/internal/exam"
)

// ReloadFunc re-reads the question pool source and swaps the catalog.
type ReloadFunc func() error

type API struct {
	service  *exam.Service
	catalog  *exam.Catalog
	reload   ReloadFunc
	location *time.Location
}

func NewAPI(service *exam.Service, catalog *exam.Catalog, reload ReloadFunc, location *time.Location) *API {
	if location == nil {
		location = time.UTC
	}
	return &API{
		service:  service,
		catalog:  catalog,
		reload:   reload,
		location: location,
	}
}
