package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can register with.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
)

// DefaultDisabilityType is applied when registration omits the field.
const DefaultDisabilityType = "none"

// User represents a platform account. The password hash never leaves the
// server: the json tag excludes it from every serialized response.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	DisabilityType   string    `gorm:"type:varchar(32);not null;default:'none'" json:"disabilityType"`
	Phone            string    `json:"phone,omitempty"`
	Role             string    `gorm:"type:varchar(16);not null;default:'job_seeker'" json:"role"`
	IsActive         bool      `gorm:"not null;default:true" json:"isActive"`
	ProfileCompleted bool      `gorm:"not null;default:false" json:"profileCompleted"`
	Avatar           string    `json:"avatar,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
