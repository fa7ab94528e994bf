package application

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/go-faster/errors"
	"github.com/pressly/goose/v3"
)

// MigrationManager collects goose-annotated schema files from modules and applies them.
type MigrationManager interface {
	RegisterSchema(fs ...*embed.FS)
	Sources() []MigrationSource
	Up(ctx context.Context, db *sql.DB) error
	Down(ctx context.Context, db *sql.DB) error
	Status(ctx context.Context, db *sql.DB) error
}

// MigrationSource is a directory of *.sql files inside an embedded FS.
type MigrationSource struct {
	FS  fs.FS
	Dir string
}

func NewMigrationManager() MigrationManager {
	return &migrationManager{}
}

// goose keeps its base FS in package state.
var gooseMu sync.Mutex

type migrationManager struct {
	sources []MigrationSource
}

func (m *migrationManager) RegisterSchema(fsys ...*embed.FS) {
	for _, schemaFs := range fsys {
		files, err := listFiles(schemaFs, ".")
		if err != nil {
			panic(err)
		}
		dirs := map[string]struct{}{}
		for _, f := range files {
			if strings.HasSuffix(f, ".sql") {
				dirs[path.Dir(f)] = struct{}{}
			}
		}
		ordered := make([]string, 0, len(dirs))
		for d := range dirs {
			ordered = append(ordered, d)
		}
		sort.Strings(ordered)
		for _, d := range ordered {
			m.sources = append(m.sources, MigrationSource{FS: schemaFs, Dir: d})
		}
	}
}

func (m *migrationManager) Sources() []MigrationSource {
	return m.sources
}

func (m *migrationManager) Up(ctx context.Context, db *sql.DB) error {
	return m.each(func(src MigrationSource) error {
		return goose.UpContext(ctx, db, src.Dir, goose.WithAllowMissing())
	})
}

// Down rolls back the latest migration of every registered source, newest source first.
func (m *migrationManager) Down(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	for i := len(m.sources) - 1; i >= 0; i-- {
		src := m.sources[i]
		goose.SetBaseFS(src.FS)
		if err := goose.DownContext(ctx, db, src.Dir); err != nil {
			return errors.Wrapf(err, "migrate down %s", src.Dir)
		}
	}
	goose.SetBaseFS(nil)
	return nil
}

func (m *migrationManager) Status(ctx context.Context, db *sql.DB) error {
	return m.each(func(src MigrationSource) error {
		return goose.StatusContext(ctx, db, src.Dir)
	})
}

func (m *migrationManager) each(fn func(src MigrationSource) error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	defer goose.SetBaseFS(nil)
	for _, src := range m.sources {
		goose.SetBaseFS(src.FS)
		if err := fn(src); err != nil {
			return errors.Wrapf(err, "migrations %s", src.Dir)
		}
	}
	return nil
}
