package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"rondas/internal/domain"
)

var csvHeader = []string{
	"id", "created_at", "ronda_id", "grupo", "local",
	"responsavel", "status", "descricao_ocorrencias", "fotos_paths",
}

// CSVStore appends rounds to a local spreadsheet-style ledger, one row per
// round with a header row written on first use. The file is opened with
// O_APPEND and guarded by a mutex so rows never interleave.
type CSVStore struct {
	mu   sync.Mutex
	file *os.File
}

func NewCSVStore(path string) (*CSVStore, error) {
	if path == "" {
		path = "rondas.csv"
	}

	info, err := os.Stat(path)
	fresh := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open csv ledger: %w", err)
	}

	s := &CSVStore{file: file}
	if fresh {
		if err := s.writeRow(csvHeader); err != nil {
			file.Close()
			return nil, fmt.Errorf("write csv header: %w", err)
		}
	}
	return s, nil
}

func (s *CSVStore) Append(ctx context.Context, ronda *domain.Ronda) error {
	if !ronda.Status.Valid() {
		return ErrInvalidStatus
	}

	ronda.ID = uuid.New()
	ronda.CreatedAt = time.Now().UTC()

	return s.writeRow([]string{
		ronda.ID.String(),
		ronda.CreatedAt.Format(time.RFC3339),
		ronda.RondaID,
		ronda.Grupo,
		ronda.Local,
		ronda.Responsavel,
		string(ronda.Status),
		ronda.DescricaoOcorrencias,
		joinFotosPaths(ronda.FotosPaths),
	})
}

func (s *CSVStore) writeRow(row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := csv.NewWriter(s.file)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return s.file.Sync()
}

func (s *CSVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
