package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/accessihire/backend/internal/ai"
	"github.com/accessihire/backend/internal/models"
	"github.com/accessihire/backend/internal/repository"
	appErr "github.com/accessihire/backend/pkg/errors"
	"github.com/accessihire/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ResumeGenerator produces structured resume data from a free-text prompt.
type ResumeGenerator interface {
	Generate(ctx context.Context, prompt string) (*ai.ResumeData, error)
}

// ResumeInput carries the writable resume fields. Nil means the field was
// absent from the request, so updates only overwrite what was sent.
type ResumeInput struct {
	PersonalInfo   *models.PersonalInfo
	Experience     []models.ExperienceEntry
	Education      []models.EducationEntry
	Skills         *models.SkillSet
	Projects       []models.Project
	Certifications []models.Certification
	Accessibility  map[string]any
	Template       *string
	AIGenerated    *bool
	AIPrompt       *string
}

type ResumeService interface {
	Create(ctx context.Context, userID uuid.UUID, input *ResumeInput) (*models.Resume, error)
	GenerateAndCreate(ctx context.Context, userID uuid.UUID, prompt, template string) (*models.Resume, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Resume, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error)
	Update(ctx context.Context, id, userID uuid.UUID, input *ResumeInput) (*models.Resume, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type resumeService struct {
	resumes   repository.ResumeRepository
	generator ResumeGenerator
}

func NewResumeService(resumes repository.ResumeRepository, generator ResumeGenerator) ResumeService {
	return &resumeService{resumes: resumes, generator: generator}
}

var _ ResumeService = (*resumeService)(nil)

// Create persists a new resume with only the fields present in input.
func (s *resumeService) Create(ctx context.Context, userID uuid.UUID, input *ResumeInput) (*models.Resume, error) {
	now := time.Now()
	r := &models.Resume{
		UserID:    userID,
		Template:  models.DefaultTemplate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyInput(r, input, true); err != nil {
		return nil, err
	}

	if err := s.resumes.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.L().Info("resume created",
		zap.String("resume_id", r.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Bool("ai_generated", r.AIGenerated),
	)
	return r, nil
}

// GenerateAndCreate asks the generator for structured data, merges in the
// template and AI provenance fields, and delegates to Create.
func (s *resumeService) GenerateAndCreate(ctx context.Context, userID uuid.UUID, prompt, template string) (*models.Resume, error) {
	data, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if template == "" {
		template = models.DefaultTemplate
	}
	aiGenerated := true
	input := &ResumeInput{
		PersonalInfo:   &data.PersonalInfo,
		Experience:     data.Experience,
		Education:      data.Education,
		Skills:         &data.Skills,
		Projects:       data.Projects,
		Certifications: data.Certifications,
		Template:       &template,
		AIGenerated:    &aiGenerated,
		AIPrompt:       &prompt,
	}
	return s.Create(ctx, userID, input)
}

// List returns the user's active resumes, most recently updated first.
func (s *resumeService) List(ctx context.Context, userID uuid.UUID) ([]models.Resume, error) {
	return s.resumes.ListActiveByUser(ctx, userID)
}

// Get fetches a resume enforcing ownership. Absent, unowned, and
// soft-deleted records all collapse into the same not-found failure so
// existence is never leaked to non-owners.
func (s *resumeService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Resume, error) {
	var r models.Resume
	if err := s.resumes.GetByID(ctx, id, &r); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Resume not found")
		}
		return nil, err
	}
	if r.UserID != userID || !r.IsActive {
		return nil, appErr.New(appErr.CodeNotFound, "Resume not found")
	}
	return &r, nil
}

// Update merges only the present keys of input over the stored record.
func (s *resumeService) Update(ctx context.Context, id, userID uuid.UUID, input *ResumeInput) (*models.Resume, error) {
	r, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// applyInput ignores the AI provenance fields outside of creation.
	if err := applyInput(r, input, false); err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Now()

	if err := s.resumes.Update(ctx, r); err != nil {
		return nil, err
	}

	logger.L().Info("resume updated", zap.String("resume_id", id.String()), zap.String("user_id", userID.String()))
	return r, nil
}

// Delete tombstones the resume: the record stays, is_active flips to false.
func (s *resumeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	r, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}

	r.IsActive = false
	r.UpdatedAt = time.Now()
	if err := s.resumes.Update(ctx, r); err != nil {
		return err
	}

	logger.L().Info("resume deleted", zap.String("resume_id", id.String()), zap.String("user_id", userID.String()))
	return nil
}

// applyInput copies the present fields of input onto r. On create, absent
// sections are left at their zero value; on update they are left untouched.
func applyInput(r *models.Resume, input *ResumeInput, create bool) error {
	if input == nil {
		return nil
	}
	if input.PersonalInfo != nil {
		if err := setJSON(&r.PersonalInfo, input.PersonalInfo); err != nil {
			return err
		}
	}
	if input.Experience != nil {
		if err := setJSON(&r.Experience, input.Experience); err != nil {
			return err
		}
	}
	if input.Education != nil {
		if err := setJSON(&r.Education, input.Education); err != nil {
			return err
		}
	}
	if input.Skills != nil {
		if err := setJSON(&r.Skills, input.Skills); err != nil {
			return err
		}
	}
	if input.Projects != nil {
		if err := setJSON(&r.Projects, input.Projects); err != nil {
			return err
		}
	}
	if input.Certifications != nil {
		if err := setJSON(&r.Certifications, input.Certifications); err != nil {
			return err
		}
	}
	if input.Accessibility != nil {
		if err := setJSON(&r.Accessibility, input.Accessibility); err != nil {
			return err
		}
	}
	if input.Template != nil && *input.Template != "" {
		r.Template = *input.Template
	}
	if create {
		if input.AIGenerated != nil {
			r.AIGenerated = *input.AIGenerated
		}
		if input.AIPrompt != nil {
			r.AIPrompt = *input.AIPrompt
		}
	}
	return nil
}

func setJSON(dst *datatypes.JSON, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid resume section json")
	}
	*dst = datatypes.JSON(b)
	return nil
}
