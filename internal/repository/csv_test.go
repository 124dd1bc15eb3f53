package repository

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rondas/internal/domain"
)

func readLedger(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVStore_Append(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rondas.csv")

	store, err := NewCSVStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Append(ctx, &domain.Ronda{
		RondaID:     "adm__portaria",
		Grupo:       "ADM",
		Local:       "Portaria",
		Responsavel: "Maria",
		Status:      domain.StatusSemAlteracoes,
	}))
	require.NoError(t, store.Append(ctx, &domain.Ronda{
		RondaID:              "operacao__cava",
		Grupo:                "Operação",
		Local:                "Cava",
		Responsavel:          "João",
		Status:               domain.StatusComOcorrencias,
		DescricaoOcorrencias: "portão danificado",
		FotosPaths:           []string{"a.jpg", "b.jpg"},
	}))
	require.NoError(t, store.Close())

	rows := readLedger(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])

	assert.Equal(t, "adm__portaria", rows[1][2])
	assert.Equal(t, "Maria", rows[1][5])
	assert.Equal(t, "SEM_ALTERACOES", rows[1][6])
	assert.Equal(t, "", rows[1][7])
	assert.Equal(t, "", rows[1][8])

	assert.Equal(t, "COM_OCORRENCIAS", rows[2][6])
	assert.Equal(t, "portão danificado", rows[2][7])
	assert.Equal(t, "a.jpg;b.jpg", rows[2][8])
}

func TestCSVStore_ReopenDoesNotDuplicateHeader(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rondas.csv")

	store, err := NewCSVStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, &domain.Ronda{
		RondaID: "adm__cozinha", Grupo: "ADM", Local: "Cozinha",
		Responsavel: "Ana", Status: domain.StatusSemAlteracoes,
	}))
	require.NoError(t, store.Close())

	store, err = NewCSVStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, &domain.Ronda{
		RondaID: "adm__cozinha", Grupo: "ADM", Local: "Cozinha",
		Responsavel: "Ana", Status: domain.StatusSemAlteracoes,
	}))
	require.NoError(t, store.Close())

	rows := readLedger(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.NotEqual(t, csvHeader, rows[1])
}

func TestMemoryStore_Append(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Append(ctx, &domain.Ronda{
		RondaID: "adm__portaria", Grupo: "ADM", Local: "Portaria",
		Responsavel: "Maria", Status: domain.StatusSemAlteracoes,
	}))
	require.NoError(t, store.Append(ctx, &domain.Ronda{
		RondaID: "operacao__linha", Grupo: "Operação", Local: "Linha",
		Responsavel: "João", Status: domain.StatusSemAlteracoes,
	}))

	rondas := store.Rondas()
	require.Len(t, rondas, 2)
	assert.Equal(t, "adm__portaria", rondas[0].RondaID)
	assert.Equal(t, "operacao__linha", rondas[1].RondaID)
	assert.NotEqual(t, rondas[0].ID, rondas[1].ID)
}
