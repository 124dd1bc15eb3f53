package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rondas/internal/domain"
	"rondas/internal/testutil"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	db, err := testutil.SetupTestDB("../../.env", "../../migrations")
	if err == nil {
		testDB = db
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func TestPostgresStore_Append(t *testing.T) {
	testutil.RequireDB(t, testDB)
	store := &PostgresStore{db: &Database{db: testDB}}
	ctx := context.Background()

	responsavel := fmt.Sprintf("maria-%d", time.Now().UnixNano())
	ronda := &domain.Ronda{
		RondaID:              "operacao__cava",
		Grupo:                "Operação",
		Local:                "Cava",
		Responsavel:          responsavel,
		Status:               domain.StatusComOcorrencias,
		DescricaoOcorrencias: "portão danificado",
		FotosPaths:           []string{"rondas/2026-01-13/operacao__cava/a.jpg"},
	}

	require.NoError(t, store.Append(ctx, ronda))
	assert.NotEqual(t, uuid.Nil, ronda.ID)
	assert.False(t, ronda.CreatedAt.IsZero())

	var row struct {
		Status     string         `db:"status"`
		Descricao  string         `db:"descricao_ocorrencias"`
		FotosPaths pq.StringArray `db:"fotos_paths"`
	}
	err := testDB.Get(&row, `SELECT status, descricao_ocorrencias, fotos_paths FROM rondas WHERE id = $1`, ronda.ID)
	require.NoError(t, err)

	assert.Equal(t, "COM_OCORRENCIAS", row.Status)
	assert.Equal(t, "portão danificado", row.Descricao)
	assert.Equal(t, pq.StringArray{"rondas/2026-01-13/operacao__cava/a.jpg"}, row.FotosPaths)
}

func TestPostgresStore_AppendWithoutPhotos(t *testing.T) {
	testutil.RequireDB(t, testDB)
	store := &PostgresStore{db: &Database{db: testDB}}
	ctx := context.Background()

	responsavel := fmt.Sprintf("maria-%d", time.Now().UnixNano())
	ronda := &domain.Ronda{
		RondaID:     "adm__portaria",
		Grupo:       "ADM",
		Local:       "Portaria",
		Responsavel: responsavel,
		Status:      domain.StatusSemAlteracoes,
	}

	require.NoError(t, store.Append(ctx, ronda))
	assert.NotEqual(t, uuid.Nil, ronda.ID)

	var row struct {
		Descricao  string         `db:"descricao_ocorrencias"`
		FotosPaths pq.StringArray `db:"fotos_paths"`
	}
	err := testDB.Get(&row, `SELECT descricao_ocorrencias, fotos_paths FROM rondas WHERE id = $1`, ronda.ID)
	require.NoError(t, err)

	assert.Equal(t, "", row.Descricao)
	assert.Empty(t, row.FotosPaths, "photo-less rounds must persist an empty array, not NULL")
}

func TestPostgresStore_AppendRejectsInvalidStatus(t *testing.T) {
	testutil.RequireDB(t, testDB)
	store := &PostgresStore{db: &Database{db: testDB}}

	err := store.Append(context.Background(), &domain.Ronda{
		RondaID:     "adm__portaria",
		Responsavel: "Maria",
		Status:      domain.RondaStatus("PENDENTE"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
