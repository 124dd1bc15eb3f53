package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"rondas/internal/archive"
	"rondas/internal/domain"
	"rondas/internal/metrics"
	"rondas/internal/repository"
)

var (
	ErrResponsavelObrigatorio = errors.New("informe o nome do responsável")
	ErrDescricaoObrigatoria   = errors.New("descreva as ocorrências observadas")
	ErrStatusInvalido         = errors.New("status de ronda inválido")
	ErrStorageFailure         = errors.New("falha ao salvar a ronda")
)

type SubmitRondaInput struct {
	Responsavel          string
	Status               domain.RondaStatus
	DescricaoOcorrencias string
	Fotos                []archive.Photo
}

type operatorFields struct {
	Responsavel string `valid:"required"`
}

// RondaService runs the submission pipeline: resolve, validate, archive,
// append. One linear pass per request; a failure at any step terminates the
// request and nothing after the failing step runs.
type RondaService struct {
	registry *domain.Registry
	archiver *archive.Archiver
	records  repository.RecordStore
}

func NewRondaService(registry *domain.Registry, archiver *archive.Archiver, records repository.RecordStore) *RondaService {
	return &RondaService{
		registry: registry,
		archiver: archiver,
		records:  records,
	}
}

// ResolveCheckpoint looks the id up in the registry.
func (s *RondaService) ResolveCheckpoint(id string) (domain.Checkpoint, error) {
	return s.registry.Resolve(id)
}

// ValidIDs lists the known checkpoint ids, sorted, for error payloads.
func (s *RondaService) ValidIDs() []string {
	return s.registry.IDs()
}

// Submit validates the operator input, archives the photos and appends the
// record. Photos are archived before the append so a failed upload never
// leaves a record pointing at missing blobs; a failed append leaves orphan
// blobs behind, which is harmless and resolved by the operator resubmitting.
func (s *RondaService) Submit(ctx context.Context, rondaID string, input SubmitRondaInput) (*domain.Ronda, error) {
	cp, err := s.registry.Resolve(rondaID)
	if err != nil {
		return nil, err
	}

	if err := validateInput(&input); err != nil {
		return nil, err
	}

	fotosPaths, err := s.archiver.Archive(ctx, cp.ID, input.Fotos)
	if err != nil {
		if errors.Is(err, archive.ErrUnsupportedMediaType) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	ronda := &domain.Ronda{
		RondaID:              cp.ID,
		Grupo:                cp.Grupo,
		Local:                cp.Local,
		Responsavel:          input.Responsavel,
		Status:               input.Status,
		DescricaoOcorrencias: input.DescricaoOcorrencias,
		FotosPaths:           fotosPaths,
	}

	if err := s.records.Append(ctx, ronda); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	metrics.CountSubmission(ronda.RondaID, string(ronda.Status))
	return ronda, nil
}

// validateInput normalizes and checks the operator fields in place. The
// description requirement is conditional: mandatory with occurrences,
// discarded without them so a stale draft never reaches the record.
func validateInput(input *SubmitRondaInput) error {
	input.Responsavel = strings.TrimSpace(input.Responsavel)
	input.DescricaoOcorrencias = strings.TrimSpace(input.DescricaoOcorrencias)

	if _, err := govalidator.ValidateStruct(operatorFields{Responsavel: input.Responsavel}); err != nil {
		return ErrResponsavelObrigatorio
	}

	if !input.Status.Valid() {
		return ErrStatusInvalido
	}

	switch input.Status {
	case domain.StatusComOcorrencias:
		if input.DescricaoOcorrencias == "" {
			return ErrDescricaoObrigatoria
		}
	case domain.StatusSemAlteracoes:
		input.DescricaoOcorrencias = ""
	}

	return nil
}
