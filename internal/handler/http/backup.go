package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/backup"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BackupHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	ListStored(w http.ResponseWriter, r *http.Request)
	DownloadStored(w http.ResponseWriter, r *http.Request)
	WriteNow(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	backupService backup.BackupService
}

func NewBackupHandler(backupService backup.BackupService) BackupHandler {
	return &backupHandlerImpl{
		backupService: backupService,
	}
}

// Export implements BackupHandler. ?download=true adds a Content-Disposition header.
func (h *backupHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.backupService.Snapshot(r.Context())
	if err != nil {
		slog.Error("Backup snapshot failed", "error", err)
		response.HandleError(w, err)
		return
	}

	if download, _ := strconv.ParseBool(r.URL.Query().Get("download")); download {
		name := fmt.Sprintf("teamtime-%s.json", snap.GeneratedAt.Format("20060102T150405Z"))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		slog.Error("Backup encode failed", "error", err)
	}
}

// ListStored implements BackupHandler.
func (h *backupHandlerImpl) ListStored(w http.ResponseWriter, r *http.Request) {
	stored, err := h.backupService.ListStored(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stored)
}

// DownloadStored implements BackupHandler.
func (h *backupHandlerImpl) DownloadStored(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rc, err := h.backupService.OpenStored(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("Backup download failed", "name", name, "error", err)
	}
}

// WriteNow implements BackupHandler.
func (h *backupHandlerImpl) WriteNow(w http.ResponseWriter, r *http.Request) {
	stored, err := h.backupService.WriteToStorage(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Backup written", stored)
}
