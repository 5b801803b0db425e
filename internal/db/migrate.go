package db

import (
	"context"
	"database/sql"

	"github.com/crisvega/userhub/internal/db/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded schema through the database/sql pgx
// driver. The pgxpool used for queries stays separate.
func RunMigrations(ctx context.Context, dbURL string) error {
	sqldb, err := sql.Open("pgx", dbURL)

	if err != nil {
		return err
	}

	defer sqldb.Close()

	goose.SetBaseFS(migrations.Migrations)

	err = goose.SetDialect("pgx")

	if err != nil {
		return err
	}

	return goose.UpContext(ctx, sqldb, ".")
}
