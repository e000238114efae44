package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"voice-catalog-go/internal/core"
	"voice-catalog-go/internal/export"
	"voice-catalog-go/internal/logger"
	"voice-catalog-go/internal/record"
	"voice-catalog-go/internal/store"
	"voice-catalog-go/internal/transcribe"
)

const maxUploadBytes = 32 << 20 // 32 MiB

type APIHandler struct {
	sessions    *core.SessionService
	transcriber transcribe.Transcriber
	uploadDir   string
	log         *logger.Logger
}

func NewAPIHandler(sessions *core.SessionService, transcriber transcribe.Transcriber, uploadDir string) *APIHandler {
	return &APIHandler{
		sessions:    sessions,
		transcriber: transcriber,
		uploadDir:   uploadDir,
		log:         logger.New(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// saveUpload copies the multipart audio part to the upload directory and
// returns the saved path.
func (h *APIHandler) saveUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".webm"
	}
	path := filepath.Join(h.uploadDir, uuid.NewString()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return path, nil
}

func (h *APIHandler) receiveAudio(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No audio file provided")
		return "", false
	}
	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No audio file provided")
		return "", false
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No audio file selected")
		return "", false
	}

	path, err := h.saveUpload(file, header)
	if err != nil {
		h.log.WithError(err).Error("failed to persist upload")
		writeError(w, http.StatusInternalServerError, "Failed to save audio file")
		return "", false
	}
	return path, true
}

type uploadResponse struct {
	Data          record.BusinessRecord `json:"data"`
	Filename      string                `json:"filename"`
	Transcription string                `json:"transcription"`
}

// UploadBusinessAudioHandler is phase 1: audio in, new session out.
func (h *APIHandler) UploadBusinessAudioHandler(w http.ResponseWriter, r *http.Request) {
	log := h.log.WithRequest(r).WithField("handler", "upload_business_audio")

	path, ok := h.receiveAudio(w, r)
	if !ok {
		return
	}

	transcript, err := h.transcriber.Transcribe(r.Context(), path)
	if err != nil {
		log.WithField("error", err.Error()).Error("transcription failed")
		writeError(w, http.StatusInternalServerError, "Transcription failed")
		return
	}

	id, rec, err := h.sessions.StartBusinessSession(r.Context(), transcript)
	if err != nil {
		log.WithField("error", err.Error()).Error("failed to create session")
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Data: rec, Filename: id, Transcription: transcript})
}

// UploadProductAudioHandler is phase 2. The optional session_id form field
// carries the identity of the session to extend; when absent, a fresh shell
// session is created so products can be captured first.
func (h *APIHandler) UploadProductAudioHandler(w http.ResponseWriter, r *http.Request) {
	log := h.log.WithRequest(r).WithField("handler", "upload_product_audio")

	path, ok := h.receiveAudio(w, r)
	if !ok {
		return
	}
	sessionID := r.FormValue("session_id")

	transcript, err := h.transcriber.Transcribe(r.Context(), path)
	if err != nil {
		log.WithField("error", err.Error()).Error("transcription failed")
		writeError(w, http.StatusInternalServerError, "Transcription failed")
		return
	}

	id, rec, err := h.sessions.AddProducts(r.Context(), sessionID, transcript)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session file not found")
			return
		}
		log.WithField("error", err.Error()).Error("failed to append products")
		writeError(w, http.StatusInternalServerError, "Failed to update session")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Data: rec, Filename: id, Transcription: transcript})
}

type saveRequest struct {
	Filename string                 `json:"filename"`
	Data     *record.BusinessRecord `json:"data"`
}

// SaveHandler stores an edited record verbatim: full overwrite, no
// extraction involved.
func (h *APIHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Filename == "" || req.Data == nil {
		writeError(w, http.StatusBadRequest, "Missing filename or data")
		return
	}

	if _, err := h.sessions.Replace(req.Filename, *req.Data); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session file not found")
			return
		}
		h.log.WithError(err).Error("failed to save session")
		writeError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Data saved successfully"})
}

func (h *APIHandler) GetSessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List()
	if err != nil {
		h.log.WithError(err).Error("failed to list sessions")
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "filename")

	rec, err := h.sessions.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session file not found")
			return
		}
		h.log.WithError(err).Error("failed to load session")
		writeError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *APIHandler) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "filename")

	deleted, err := h.sessions.Delete(id)
	if err != nil {
		h.log.WithError(err).Error("failed to delete session")
		writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Session file not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Session deleted successfully"})
}

// ExportSessionsHandler streams the stored catalog as an .xlsx workbook.
func (h *APIHandler) ExportSessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List()
	if err != nil {
		h.log.WithError(err).Error("failed to list sessions for export")
		writeError(w, http.StatusInternalServerError, "Failed to export sessions")
		return
	}

	workbook, err := export.BuildWorkbook(sessions)
	if err != nil {
		h.log.WithError(err).Error("failed to build export workbook")
		writeError(w, http.StatusInternalServerError, "Failed to export sessions")
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sessions.xlsx"`)
	if err := workbook.Write(w); err != nil {
		h.log.WithError(err).Error("failed to stream export workbook")
	}
}

func (h *APIHandler) InfoHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "voice-catalog API is running",
		"endpoints": []string{
			"/upload_business_audio",
			"/upload_product_audio",
			"/save",
			"/get_sessions",
			"/get_session/{filename}",
			"/delete_session/{filename}",
			"/export_sessions",
		},
	})
}
