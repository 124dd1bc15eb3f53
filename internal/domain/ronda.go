package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RondaStatus string

const (
	StatusSemAlteracoes  RondaStatus = "SEM_ALTERACOES"
	StatusComOcorrencias RondaStatus = "COM_OCORRENCIAS"
)

var RondaStatuses = []RondaStatus{
	StatusSemAlteracoes,
	StatusComOcorrencias,
}

// Valid reports whether s is one of the two known round statuses.
func (s RondaStatus) Valid() bool {
	return s == StatusSemAlteracoes || s == StatusComOcorrencias
}

// Ronda is one completed round report tied to a checkpoint and timestamp.
// Records are append-only: once persisted they are never updated or deleted.
type Ronda struct {
	ID                   uuid.UUID   `db:"id" json:"id"`
	CreatedAt            time.Time   `db:"created_at" json:"created_at"`
	RondaID              string      `db:"ronda_id" json:"ronda_id"`
	Grupo                string      `db:"grupo" json:"grupo"`
	Local                string      `db:"local" json:"local"`
	Responsavel          string      `db:"responsavel" json:"responsavel"`
	Status               RondaStatus `db:"status" json:"status"`
	DescricaoOcorrencias string      `db:"descricao_ocorrencias" json:"descricao_ocorrencias"`
	FotosPaths           []string    `db:"-" json:"fotos_paths"`
}

// WhatsAppMessage renders the round as the plain-text summary operators copy
// into the messaging group. Pure; never persisted. Line order is fixed:
// status banner, location, timestamp, responsible, then the occurrence block
// only for COM_OCORRENCIAS with a non-empty description, then the photo count
// only when photos were archived.
func (r *Ronda) WhatsAppMessage() string {
	var linhas []string

	if r.Status == StatusSemAlteracoes {
		linhas = append(linhas, "✅ *Rondas Realizadas, Sem Alterações!*")
	} else {
		linhas = append(linhas, "⚠️ *Ronda Realizada, Com Ocorrências!*")
	}

	if r.Local != "" && r.Grupo != "" {
		linhas = append(linhas, fmt.Sprintf("📍 *Local:* %s (%s)", r.Local, r.Grupo))
	} else {
		linhas = append(linhas, fmt.Sprintf("📍 *Local:* %s", r.RondaID))
	}

	linhas = append(linhas, fmt.Sprintf("🕒 *Data/Hora:* %s", r.CreatedAt.Format("02/01/2006 15:04")))
	linhas = append(linhas, fmt.Sprintf("👤 *Responsável:* %s", r.Responsavel))

	if r.Status == StatusComOcorrencias && r.DescricaoOcorrencias != "" {
		linhas = append(linhas, "")
		linhas = append(linhas, fmt.Sprintf("📝 *Ocorrências:* %s", r.DescricaoOcorrencias))
	}

	if len(r.FotosPaths) > 0 {
		linhas = append(linhas, fmt.Sprintf("📷 *Fotos:* %d (arquivadas no sistema)", len(r.FotosPaths)))
	}

	return strings.Join(linhas, "\n")
}
