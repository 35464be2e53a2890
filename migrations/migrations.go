// Package migrations embeds the SQL schema so binaries and tests apply the same files.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"gorm.io/gorm"
)

//go:embed *.sql
var files embed.FS

type Migration struct {
	Version string
	SQL     string
}

// Up returns the up migrations ordered by version.
func Up() ([]Migration, error) {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(name, ".up.sql"),
			SQL:     string(content),
		})
	}
	return migrations, nil
}

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Apply runs every up migration not yet recorded in schema_migrations, each in its own transaction,
// and returns the versions it applied.
func Apply(ctx context.Context, db *gorm.DB) ([]string, error) {
	migrations, err := Up()
	if err != nil {
		return nil, fmt.Errorf("migrations.Apply: %w", err)
	}
	if err = db.WithContext(ctx).Exec(createVersionTable).Error; err != nil {
		return nil, fmt.Errorf("migrations.Apply: %w", err)
	}
	var done []string
	if err = db.WithContext(ctx).Table("schema_migrations").Pluck("version", &done).Error; err != nil {
		return nil, fmt.Errorf("migrations.Apply: %w", err)
	}

	var applied []string
	for _, m := range migrations {
		if slices.Contains(done, m.Version) {
			continue
		}
		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if e := tx.Exec(m.SQL).Error; e != nil {
				return e
			}
			return tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version).Error
		})
		if err != nil {
			return applied, fmt.Errorf("migrations.Apply %s: %w", m.Version, err)
		}
		applied = append(applied, m.Version)
	}
	return applied, nil
}
