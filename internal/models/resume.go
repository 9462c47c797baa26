package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Resume is a user-owned resume record. The section columns hold JSONB
// documents; IsActive doubles as the soft-delete flag, so a deleted resume
// stays in the table as a tombstone.
type Resume struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	PersonalInfo   datatypes.JSON `gorm:"type:jsonb" json:"personalInfo"`
	Experience     datatypes.JSON `gorm:"type:jsonb" json:"experience"`
	Education      datatypes.JSON `gorm:"type:jsonb" json:"education"`
	Skills         datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Projects       datatypes.JSON `gorm:"type:jsonb" json:"projects"`
	Certifications datatypes.JSON `gorm:"type:jsonb" json:"certifications"`
	Accessibility  datatypes.JSON `gorm:"type:jsonb" json:"accessibility"`
	Template       string         `gorm:"type:varchar(32);not null;default:'modern'" json:"template"`
	AIGenerated    bool           `gorm:"not null;default:false" json:"aiGenerated"`
	AIPrompt       string         `gorm:"type:text" json:"aiPrompt,omitempty"`
	IsActive       bool           `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// DefaultTemplate is used when a resume is created without one.
const DefaultTemplate = "modern"

// PersonalInfo is the header section of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Summary  string `json:"summary"`
}

// ExperienceEntry is one work-history item. Dates stay as strings: they come
// from user input or model output and are never computed with.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one education item.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// SkillSet groups skills the way the resume templates render them.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Languages []string `json:"languages,omitempty"`
}

// Project is one portfolio project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Certification is one certification item.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}
