package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yongsanfmc/instructor-directory/internal/app/models"
	appRepos "github.com/yongsanfmc/instructor-directory/internal/app/repositories"
	"github.com/yongsanfmc/instructor-directory/internal/config"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/auth"
)

// CreateDefaultData ensures the configured console admin account exists.
// The directory content itself is maintained through the admin console, so
// no instructor records are seeded.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("No default admin configured, skipping admin seed")
		return nil
	}

	adminRepo := appRepos.NewAdminRepository(dbPool)

	exists, err := adminRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		return err
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Default admin already present")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.Admin{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
	}
	id, err := adminRepo.CreateAdmin(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return errors.Join(errors.New("seeding default admin"), err)
	}

	lgr.Info().Int64("adminID", id).Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
