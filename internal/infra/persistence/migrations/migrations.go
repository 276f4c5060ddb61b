// Package migrations embeds the goose SQL migrations and runs them against PostgreSQL.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"strconv"

	"servicehub/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

const dir = "sql"

func setup() error {
	goose.SetBaseFS(embedded)

	return errors.Wrap(goose.SetDialect("postgres"), "set goose dialect")
}

// Run executes a goose command ("up", "down", "status", "redo", ...) on the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return errors.New("db is required")
	}
	if err := setup(); err != nil {
		return err
	}

	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

// MigrateTo moves the schema up or down to the target version.
func MigrateTo(ctx context.Context, db *sql.DB, targetVersion string) error {
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q (expected YYYYMMDDHHMMSS)", targetVersion)
	}
	if err := setup(); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "get db version")
	}

	switch {
	case current == target:
		return nil
	case current < target:
		return errors.Wrapf(goose.UpToContext(ctx, db, dir, target), "goose up-to %d", target)
	default:
		return errors.Wrapf(goose.DownToContext(ctx, db, dir, target), "goose down-to %d", target)
	}
}
