package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/docdigest/docdigest/internal/application"
	"github.com/docdigest/docdigest/internal/transport/middleware"
)

// NewRouter builds the HTTP routing for the application. When an auth
// token is configured, the history-clearing route requires it.
func NewRouter(app *application.Application) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Handle("/health", app.HealthHandler).Methods("GET")
	api.Handle("/summarize", app.SummarizeHandler).Methods("POST")
	api.Handle("/upload", app.UploadHandler).Methods("POST")
	api.Handle("/history", app.HistoryHandler).Methods("GET")
	api.Handle("/report", app.ReportHandler).Methods("POST")

	clear := http.Handler(app.ClearHistoryHandler)
	if app.Config.AuthToken != "" {
		clear = middleware.Auth(app.Config.AuthToken)(clear)
	}
	api.Handle("/history/clear", clear).Methods("POST")

	return r
}

// CreateHandler creates the main HTTP handler and its cleanup function.
func CreateHandler() (http.Handler, func(), error) {
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	cleanup := func() {
		app.Close()
	}

	return NewRouter(app), cleanup, nil
}

// HandleRequest handles a single HTTP request (for Cloud Functions).
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, cleanup, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
