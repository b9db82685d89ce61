package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appRepos "github.com/yigit/schoolfm/internal/app/repositories"
	appServices "github.com/yigit/schoolfm/internal/app/services"
)

// EnsureStaffRoles creates the default staff roles that do not exist yet.
// Running it repeatedly never duplicates a role.
func EnsureStaffRoles(ctx context.Context, db appRepos.DBTX, lgr zerolog.Logger) (int64, error) {
	lgr.Info().Msg("Checking/Creating default staff roles...")

	roleService := appServices.NewStaffRoleService(appRepos.NewStaffRoleRepository(db))
	added, err := roleService.EnsureDefaultRoles(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default staff roles")
		return 0, fmt.Errorf("failed to seed staff roles: %w", err)
	}

	lgr.Info().Int64("added", added).Msg("Default data check/creation finished.")
	return added, nil
}
