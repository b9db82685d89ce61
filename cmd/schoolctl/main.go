package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/schoolfm/internal/app/migrations"
	"github.com/yigit/schoolfm/internal/bootstrap"
	"github.com/yigit/schoolfm/internal/config"
	"github.com/yigit/schoolfm/internal/db"
	"github.com/yigit/schoolfm/internal/pkg/logger"
	"github.com/yigit/schoolfm/internal/seed"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("schoolctl failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "schoolctl",
		Usage: "maintenance tasks for the school back office database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config file",
				Value:   bootstrap.DefaultConfigPath,
				EnvVars: []string{"SCHOOLFM_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "apply pending schema files",
				Action: withDatabase(func(ctx context.Context, pg *db.PostgresDB, lgr zerolog.Logger) error {
					return migrations.NewMigrator(pg.Pool, lgr).Migrate(ctx)
				}),
			},
			{
				Name:  "reset",
				Usage: "drop every table, rebuild the schema and seed staff roles",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "confirm that all data will be destroyed"},
				},
				Before: requireConfirmation,
				Action: withDatabase(func(ctx context.Context, pg *db.PostgresDB, lgr zerolog.Logger) error {
					if err := migrations.NewMigrator(pg.Pool, lgr).Reset(ctx); err != nil {
						return err
					}
					_, err := seed.EnsureStaffRoles(ctx, pg.Pool, lgr)
					return err
				}),
			},
			{
				Name:  "seed-roles",
				Usage: "insert the default staff roles that are missing",
				Action: withDatabase(func(ctx context.Context, pg *db.PostgresDB, lgr zerolog.Logger) error {
					added, err := seed.EnsureStaffRoles(ctx, pg.Pool, lgr)
					if err != nil {
						return err
					}
					fmt.Fprintf(os.Stdout, "%d staff roles added\n", added)
					return nil
				}),
			},
		},
	}
}

// requireConfirmation stops destructive commands that were not confirmed with --yes.
func requireConfirmation(c *cli.Context) error {
	if !c.Bool("yes") {
		return cli.Exit("refusing to reset without --yes: every table will be dropped", 2)
	}
	return nil
}

type dbAction func(ctx context.Context, pg *db.PostgresDB, lgr zerolog.Logger) error

// withDatabase loads the config, opens the pool and closes it after run.
func withDatabase(run dbAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
		if err != nil {
			return err
		}
		return connectAndRun(c.Context, cfg, lgr, run)
	}
}

func connectAndRun(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, run dbAction) error {
	pg, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer pg.Close()

	return run(ctx, pg, lgr)
}
