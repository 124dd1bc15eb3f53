package dto

import (
	"time"

	"rondas/internal/domain"
)

type Checkpoint struct {
	ID       string `json:"id"`
	Grupo    string `json:"grupo"`
	Local    string `json:"local"`
	DataHora string `json:"data_hora"`
}

func CheckpointFromDomain(cp domain.Checkpoint, now time.Time) *Checkpoint {
	return &Checkpoint{
		ID:       cp.ID,
		Grupo:    cp.Grupo,
		Local:    cp.Local,
		DataHora: now.Format("02/01/2006 15:04"),
	}
}

type Submission struct {
	ID                   string    `json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	RondaID              string    `json:"ronda_id"`
	Grupo                string    `json:"grupo"`
	Local                string    `json:"local"`
	Responsavel          string    `json:"responsavel"`
	Status               string    `json:"status"`
	DescricaoOcorrencias string    `json:"descricao_ocorrencias,omitempty"`
	FotosPaths           []string  `json:"fotos_paths"`
	MensagemWhatsApp     string    `json:"mensagem_whatsapp"`
}

func SubmissionFromDomain(r *domain.Ronda) *Submission {
	fotos := r.FotosPaths
	if fotos == nil {
		fotos = []string{}
	}
	return &Submission{
		ID:                   r.ID.String(),
		CreatedAt:            r.CreatedAt,
		RondaID:              r.RondaID,
		Grupo:                r.Grupo,
		Local:                r.Local,
		Responsavel:          r.Responsavel,
		Status:               string(r.Status),
		DescricaoOcorrencias: r.DescricaoOcorrencias,
		FotosPaths:           fotos,
		MensagemWhatsApp:     r.WhatsAppMessage(),
	}
}
