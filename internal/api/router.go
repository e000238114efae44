package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Get("/api", apiHandler.InfoHandler)
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Phase 1 and phase 2 uploads
	r.Post("/upload_business_audio", apiHandler.UploadBusinessAudioHandler)
	r.Post("/upload_product_audio", apiHandler.UploadProductAudioHandler)

	// Session management
	r.Post("/save", apiHandler.SaveHandler)
	r.Get("/get_sessions", apiHandler.GetSessionsHandler)
	r.Get("/get_session/{filename}", apiHandler.GetSessionHandler)
	r.Delete("/delete_session/{filename}", apiHandler.DeleteSessionHandler)
	r.Get("/export_sessions", apiHandler.ExportSessionsHandler)

	return r
}
