package types

import (
	"github.com/accessihire/backend/internal/models"
	"github.com/accessihire/backend/internal/services"
)

// RegisterRequest checks presence only; normalization and defaults happen
// in the account workflow, so a request with all three fields set always
// reaches it.
type RegisterRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Password       string `json:"password" validate:"required"`
	DisabilityType string `json:"disabilityType"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResumeRequest carries the writable resume fields for create and update.
// Pointers and nil slices distinguish "absent" from "set to empty", so
// updates merge only the keys the client actually sent.
type ResumeRequest struct {
	PersonalInfo   *models.PersonalInfo     `json:"personalInfo"`
	Experience     []models.ExperienceEntry `json:"experience"`
	Education      []models.EducationEntry  `json:"education"`
	Skills         *models.SkillSet         `json:"skills"`
	Projects       []models.Project         `json:"projects"`
	Certifications []models.Certification   `json:"certifications"`
	Accessibility  map[string]any           `json:"accessibility"`
	Template       *string                  `json:"template"`
	AIGenerated    *bool                    `json:"aiGenerated"`
	AIPrompt       *string                  `json:"aiPrompt"`
}

// ToInput converts the request into the service-layer field set.
func (r *ResumeRequest) ToInput() *services.ResumeInput {
	return &services.ResumeInput{
		PersonalInfo:   r.PersonalInfo,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Projects:       r.Projects,
		Certifications: r.Certifications,
		Accessibility:  r.Accessibility,
		Template:       r.Template,
		AIGenerated:    r.AIGenerated,
		AIPrompt:       r.AIPrompt,
	}
}

type GenerateResumeRequest struct {
	Prompt   string `json:"prompt" validate:"required"`
	Template string `json:"template"`
}
