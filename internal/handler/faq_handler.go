package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fotostudio/internal/domain"
	"fotostudio/internal/service"
)

type FAQHandler struct {
	faqService *service.FAQService
}

func NewFAQHandler(faqService *service.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, faqs)
}

func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var faq domain.FAQ
	if err := json.NewDecoder(r.Body).Decode(&faq); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.faqService.Create(r.Context(), &faq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, faq)
}

func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid FAQ ID", http.StatusBadRequest)
		return
	}

	var faq domain.FAQ
	if err := json.NewDecoder(r.Body).Decode(&faq); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	faq.ID = id

	if err := h.faqService.Update(r.Context(), &faq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, faq)
}

func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid FAQ ID", http.StatusBadRequest)
		return
	}

	if err := h.faqService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
