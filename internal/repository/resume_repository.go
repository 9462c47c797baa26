package repository

import (
	"context"

	"github.com/accessihire/backend/internal/models"
	appErr "github.com/accessihire/backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumeRepository stores resume records. Soft-deleted resumes (is_active =
// false) are excluded from listings but stay in the table.
type ResumeRepository interface {
	BaseRepository[models.Resume]
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Resume, error)
}

type resumeRepository struct {
	BaseRepository[models.Resume]
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{BaseRepository: NewBaseRepository[models.Resume](db), db: db}
}

func (r *resumeRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Resume, error) {
	var out []models.Resume
	if err := r.db.WithContext(ctx).Where("user_id = ? AND is_active = true", userID).Order("updated_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list resumes by user failed")
	}
	return out, nil
}
