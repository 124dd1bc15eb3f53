package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"rondas/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS rondas (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	ronda_id TEXT NOT NULL,
	grupo TEXT NOT NULL,
	local TEXT NOT NULL,
	responsavel TEXT NOT NULL,
	status TEXT NOT NULL,
	descricao_ocorrencias TEXT NOT NULL DEFAULT '',
	fotos_paths TEXT NOT NULL DEFAULT ''
)`

// SQLiteStore keeps the round log in a local embedded database for
// single-binary deployments without a managed backend.
type SQLiteStore struct {
	db *sqlx.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "rondas.db"
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create rondas table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, ronda *domain.Ronda) error {
	if !ronda.Status.Valid() {
		return ErrInvalidStatus
	}

	ronda.ID = uuid.New()
	ronda.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO rondas (id, created_at, ronda_id, grupo, local, responsavel, status, descricao_ocorrencias, fotos_paths)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		ronda.ID.String(), ronda.CreatedAt, ronda.RondaID, ronda.Grupo, ronda.Local,
		ronda.Responsavel, ronda.Status, ronda.DescricaoOcorrencias,
		joinFotosPaths(ronda.FotosPaths),
	)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// joinFotosPaths serializes photo references into a single delimited cell for
// the backends without a native list type. Keys cannot contain ';' after
// sanitizing, so the delimiter is unambiguous.
func joinFotosPaths(paths []string) string {
	return strings.Join(paths, ";")
}
