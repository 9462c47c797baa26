package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/accessihire/backend/internal/models"
	"github.com/accessihire/backend/pkg/database"
	"github.com/accessihire/backend/pkg/logger"
	appErr "github.com/accessihire/backend/pkg/errors"
)

// TestRepositoryIntegration exercises the repositories against a live
// Postgres instance. Set RUN_DB_INTEGRATION=true and DATABASE_URL to run it.
func TestRepositoryIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	if _, err := logger.Init("error", "console"); err != nil {
		t.Fatalf("init logger: %v", err)
	}

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, dbURL, "test")
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Resume{}))

	users := NewUserRepository(db)
	resumes := NewResumeRepository(db)

	email := fmt.Sprintf("it_%d@example.com", time.Now().UnixNano())
	user := models.User{Name: "Integration Tester", Email: email, Password: "hash", IsActive: true}
	require.NoError(t, users.Create(ctx, &user))
	t.Cleanup(func() {
		db.Exec("DELETE FROM resumes WHERE user_id = ?", user.ID)
		db.Exec("DELETE FROM users WHERE id = ?", user.ID)
	})

	exists, err := users.EmailExists(ctx, email)
	require.NoError(t, err)
	require.True(t, exists)

	var byEmail models.User
	require.NoError(t, users.GetByEmail(ctx, email, &byEmail))
	require.Equal(t, user.ID, byEmail.ID)

	first := models.Resume{
		UserID:       user.ID,
		PersonalInfo: datatypes.JSON([]byte(`{"fullName":"Integration Tester"}`)),
		Template:     "modern",
		IsActive:     true,
	}
	require.NoError(t, resumes.Create(ctx, &first))

	second := models.Resume{UserID: user.ID, Template: "classic", IsActive: true}
	require.NoError(t, resumes.Create(ctx, &second))
	second.Template = "minimal"
	require.NoError(t, resumes.Update(ctx, &second))

	tombstone := models.Resume{UserID: user.ID, Template: "modern", IsActive: true}
	require.NoError(t, resumes.Create(ctx, &tombstone))
	tombstone.IsActive = false
	require.NoError(t, resumes.Update(ctx, &tombstone))

	active, err := resumes.ListActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// most recently updated first
	require.Equal(t, second.ID, active[0].ID)

	var missing models.Resume
	err = resumes.GetByID(ctx, uuid.New(), &missing)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
