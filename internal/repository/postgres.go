package repository

import (
	"context"

	"github.com/lib/pq"

	"rondas/internal/domain"
)

// PostgresStore appends rounds to the rondas table. The database assigns the
// id and created_at, which makes concurrent appends from different field
// devices independent single-row inserts.
type PostgresStore struct {
	db *Database
}

func NewPostgresStore(db *Database) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, ronda *domain.Ronda) error {
	if !ronda.Status.Valid() {
		return ErrInvalidStatus
	}

	// A photo-less round carries a nil slice, which pq.Array would bind as
	// SQL NULL against the NOT NULL fotos_paths column.
	fotosPaths := ronda.FotosPaths
	if fotosPaths == nil {
		fotosPaths = []string{}
	}

	query := `
		INSERT INTO rondas (ronda_id, grupo, local, responsavel, status, descricao_ocorrencias, fotos_paths)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return s.db.DB().QueryRowContext(ctx, query,
		ronda.RondaID, ronda.Grupo, ronda.Local, ronda.Responsavel,
		ronda.Status, ronda.DescricaoOcorrencias, pq.Array(fotosPaths),
	).Scan(&ronda.ID, &ronda.CreatedAt)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
