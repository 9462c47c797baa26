package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/accessihire/backend/internal/api/middleware"
	"github.com/accessihire/backend/internal/api/types"
	"github.com/accessihire/backend/internal/services"
)

// uploadMemoryLimit caps how much of a multipart upload is buffered in memory.
const uploadMemoryLimit = 10 << 20

type ResumeHandler struct {
	resumes  services.ResumeService
	validate interface{ Struct(any) error }
	env      string
}

func NewResumeHandler(resumes services.ResumeService, v interface{ Struct(any) error }, env string) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, validate: v, env: env}
}

func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resume, err := h.resumes.Create(r.Context(), middleware.GetUserID(r.Context()), req.ToInput())
	if err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusCreated, types.Envelope{Status: types.StatusSuccess, Data: resume})
}

func (h *ResumeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Prompt is required for AI generation")
		return
	}

	resume, err := h.resumes.GenerateAndCreate(r.Context(), middleware.GetUserID(r.Context()), req.Prompt, req.Template)
	if err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusCreated, types.Envelope{Status: types.StatusSuccess, Data: resume})
}

func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.resumes.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Status: types.StatusSuccess, Data: items})
}

func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resumeID(w, r)
	if !ok {
		return
	}
	resume, err := h.resumes.Get(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Status: types.StatusSuccess, Data: resume})
}

func (h *ResumeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resumeID(w, r)
	if !ok {
		return
	}
	var req types.ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resume, err := h.resumes.Update(r.Context(), id, middleware.GetUserID(r.Context()), req.ToInput())
	if err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Status: types.StatusSuccess, Data: resume})
}

func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resumeID(w, r)
	if !ok {
		return
	}
	if err := h.resumes.Delete(r.Context(), id, middleware.GetUserID(r.Context())); err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Status: types.StatusSuccess, Message: "Resume deleted successfully"})
}

// Upload accepts a resume document but does not parse it yet. It answers
// with an empty field structure so clients can flow straight into the
// manual editor. TODO: extract fields once a document parsing service is
// chosen.
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, _, err := r.FormFile("resume")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	writeJSON(w, http.StatusOK, types.Envelope{
		Status:  types.StatusSuccess,
		Message: "Resume extracted successfully",
		Data: map[string]any{
			"personalInfo":   map[string]any{"fullName": "", "email": "", "phone": "", "summary": ""},
			"experience":     []any{},
			"education":      []any{},
			"skills":         map[string]any{"technical": []any{}, "soft": []any{}},
			"projects":       []any{},
			"certifications": []any{},
		},
	})
}

// resumeID parses the path id. Malformed ids get the same answer as
// unknown ones so the error does not reveal which ids exist.
func (h *ResumeHandler) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Resume not found")
		return uuid.Nil, false
	}
	return id, true
}
