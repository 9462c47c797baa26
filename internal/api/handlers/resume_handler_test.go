package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accessihire/backend/internal/api/validators"
	"github.com/accessihire/backend/internal/models"
	"github.com/accessihire/backend/internal/services"
	appErr "github.com/accessihire/backend/pkg/errors"
)

type mockResumeService struct{ mock.Mock }

func (m *mockResumeService) Create(ctx context.Context, userID uuid.UUID, input *services.ResumeInput) (*models.Resume, error) {
	args := m.Called(ctx, userID, input)
	res, _ := args.Get(0).(*models.Resume)
	return res, args.Error(1)
}

func (m *mockResumeService) GenerateAndCreate(ctx context.Context, userID uuid.UUID, prompt, template string) (*models.Resume, error) {
	args := m.Called(ctx, userID, prompt, template)
	res, _ := args.Get(0).(*models.Resume)
	return res, args.Error(1)
}

func (m *mockResumeService) List(ctx context.Context, userID uuid.UUID) ([]models.Resume, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]models.Resume)
	return res, args.Error(1)
}

func (m *mockResumeService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error) {
	args := m.Called(ctx, id, userID)
	res, _ := args.Get(0).(*models.Resume)
	return res, args.Error(1)
}

func (m *mockResumeService) Update(ctx context.Context, id, userID uuid.UUID, input *services.ResumeInput) (*models.Resume, error) {
	args := m.Called(ctx, id, userID, input)
	res, _ := args.Get(0).(*models.Resume)
	return res, args.Error(1)
}

func (m *mockResumeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func resumeRouter(h *ResumeHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/resume", h.Create)
	r.Get("/api/resume", h.List)
	r.Post("/api/resume/generate", h.Generate)
	r.Post("/api/resume/upload", h.Upload)
	r.Get("/api/resume/{id}", h.Get)
	r.Put("/api/resume/{id}", h.Update)
	r.Delete("/api/resume/{id}", h.Delete)
	return r
}

func TestCreateResumeReturns201(t *testing.T) {
	svc := new(mockResumeService)
	created := &models.Resume{ID: uuid.New(), Template: "modern", IsActive: true}
	svc.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(in *services.ResumeInput) bool {
		return in.PersonalInfo != nil && in.PersonalInfo.FullName == "Jane Doe"
	})).Return(created, nil)

	h := NewResumeHandler(svc, validators.New(), "test")
	body := `{"personalInfo":{"fullName":"Jane Doe"},"template":"classic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resume", strings.NewReader(body))
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"success"`)
	svc.AssertExpectations(t)
}

func TestGenerateRequiresPrompt(t *testing.T) {
	svc := new(mockResumeService)
	h := NewResumeHandler(svc, validators.New(), "test")

	req := httptest.NewRequest(http.MethodPost, "/api/resume/generate", strings.NewReader(`{"template":"modern"}`))
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Prompt is required for AI generation")
	svc.AssertNotCalled(t, "GenerateAndCreate")
}

func TestGenerateReturns201(t *testing.T) {
	svc := new(mockResumeService)
	created := &models.Resume{ID: uuid.New(), AIGenerated: true}
	svc.On("GenerateAndCreate", mock.Anything, mock.Anything, "software engineer", "modern").
		Return(created, nil)

	h := NewResumeHandler(svc, validators.New(), "test")
	req := httptest.NewRequest(http.MethodPost, "/api/resume/generate",
		strings.NewReader(`{"prompt":"software engineer","template":"modern"}`))
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetResumeNotFoundMapsTo404(t *testing.T) {
	svc := new(mockResumeService)
	svc.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, appErr.New(appErr.CodeNotFound, "Resume not found"))

	h := NewResumeHandler(svc, validators.New(), "test")
	req := httptest.NewRequest(http.MethodGet, "/api/resume/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Resume not found")
}

func TestGetResumeMalformedIDMapsTo404(t *testing.T) {
	svc := new(mockResumeService)
	h := NewResumeHandler(svc, validators.New(), "test")

	req := httptest.NewRequest(http.MethodGet, "/api/resume/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Resume not found")
	svc.AssertNotCalled(t, "Get")
}

func TestDeleteResumeReturnsConfirmation(t *testing.T) {
	svc := new(mockResumeService)
	id := uuid.New()
	svc.On("Delete", mock.Anything, id, mock.Anything).Return(nil)

	h := NewResumeHandler(svc, validators.New(), "test")
	req := httptest.NewRequest(http.MethodDelete, "/api/resume/"+id.String(), nil)
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Resume deleted successfully")
}

func TestUploadWithoutFileMapsTo400(t *testing.T) {
	svc := new(mockResumeService)
	h := NewResumeHandler(svc, validators.New(), "test")

	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", strings.NewReader(""))
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestUploadReturnsPlaceholderStructure(t *testing.T) {
	svc := new(mockResumeService)
	h := NewResumeHandler(svc, validators.New(), "test")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake resume"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	resumeRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			PersonalInfo map[string]string `json:"personalInfo"`
			Experience   []any             `json:"experience"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)
	require.Equal(t, "Resume extracted successfully", resp.Message)
	require.Empty(t, resp.Data.PersonalInfo["fullName"])
	require.Empty(t, resp.Data.Experience)
}
