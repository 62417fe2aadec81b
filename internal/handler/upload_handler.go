package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"fotostudio/internal/media"
)

const maxUploadMemory = 32 * 1024 * 1024 // 32MB в памяти, остальное на диск

type UploadHandler struct {
	uploads *media.UploadService
}

func NewUploadHandler(uploads *media.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// UploadFile обрабатывает прямую админскую загрузку файла
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	folder := r.FormValue("folder")

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")

	ref, err := h.uploads.Upload(r.Context(), data, header.Filename, contentType, folder, false)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ref)
}

// UploadAvatar принимает аватар посетителя к отзыву. Путь анонимный,
// папка фиксирована, лимиты жестче админских.
func (h *UploadHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")

	ref, err := h.uploads.Upload(r.Context(), data, header.Filename, contentType, media.FolderAvatars, true)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ref)
}

type presignRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Folder      string `json:"folder"`
}

// IssuePresign выдает подписанную ссылку для прямой загрузки из браузера.
// Тело файла через сервер не проходит.
func (h *UploadHandler) IssuePresign(w http.ResponseWriter, r *http.Request) {
	var req presignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	upload, err := h.uploads.IssuePresignedUpload(r.Context(), req.FileName, req.ContentType, req.Folder)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, upload)
}
