package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rondas/internal/api/dto"
	"rondas/internal/api/services"
	"rondas/internal/archive"
	"rondas/internal/domain"
	"rondas/internal/storage"
)

type RondaHandler struct {
	service *services.RondaService
}

func NewRondaHandler(registry *domain.Registry, backend *storage.Backend) *RondaHandler {
	archiver := archive.New(backend.Blobs)
	return &RondaHandler{
		service: services.NewRondaService(registry, archiver, backend.Records),
	}
}

type submitRequest struct {
	Responsavel          string `form:"responsavel" validate:"required"`
	Status               string `form:"status" validate:"required,oneof=SEM_ALTERACOES COM_OCORRENCIAS"`
	DescricaoOcorrencias string `form:"descricao_ocorrencias"`
}

// GetCheckpoint resolves the checkpoint behind the scanned QR code. The id
// arrives in the "ronda" query parameter; a missing parameter and an unknown
// id are distinct conditions with distinct payloads.
func (h *RondaHandler) GetCheckpoint(c echo.Context) error {
	rondaID := c.QueryParam("ronda")
	if rondaID == "" {
		return h.missingParameter(c)
	}

	cp, err := h.service.ResolveCheckpoint(rondaID)
	if err != nil {
		return h.unknownCheckpoint(c, rondaID)
	}

	return c.JSON(http.StatusOK, dto.CheckpointFromDomain(cp, time.Now()))
}

// Submit runs one round submission end to end: resolve, validate, archive
// photos, append the record and render the WhatsApp message. Any failure
// terminates the request; the operator resubmits manually.
func (h *RondaHandler) Submit(c echo.Context) error {
	rondaID := c.QueryParam("ronda")
	if rondaID == "" {
		return h.missingParameter(c)
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	fotos, closers, err := openFotos(c)
	if err != nil {
		return ErrBadRequest(c, "invalid photo upload")
	}
	defer func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}()

	ronda, err := h.service.Submit(c.Request().Context(), rondaID, services.SubmitRondaInput{
		Responsavel:          req.Responsavel,
		Status:               domain.RondaStatus(req.Status),
		DescricaoOcorrencias: req.DescricaoOcorrencias,
		Fotos:                fotos,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCheckpointNotFound):
			return h.unknownCheckpoint(c, rondaID)
		case errors.Is(err, services.ErrResponsavelObrigatorio),
			errors.Is(err, services.ErrDescricaoObrigatoria),
			errors.Is(err, services.ErrStatusInvalido),
			errors.Is(err, archive.ErrUnsupportedMediaType):
			return ErrBadRequest(c, err.Error())
		case errors.Is(err, services.ErrStorageFailure):
			return ErrStorage(c, err)
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusCreated, dto.SubmissionFromDomain(ronda))
}

// openFotos collects the uploaded photo parts in form order. A request
// without a multipart body simply has no photos.
func openFotos(c echo.Context) ([]archive.Photo, []multipart.File, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil, nil
	}

	files := form.File["fotos"]
	fotos := make([]archive.Photo, 0, len(files))
	closers := make([]multipart.File, 0, len(files))

	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			for _, closer := range closers {
				_ = closer.Close()
			}
			return nil, nil, err
		}
		closers = append(closers, src)
		fotos = append(fotos, archive.Photo{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        src,
		})
	}
	return fotos, closers, nil
}

func (h *RondaHandler) missingParameter(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":     "missing ronda parameter",
		"usage":     "abra pelo QR Code com parâmetro, ex: /api/rondas/checkpoint?ronda=adm__portaria",
		"valid_ids": h.service.ValidIDs(),
	})
}

func (h *RondaHandler) unknownCheckpoint(c echo.Context, rondaID string) error {
	return c.JSON(http.StatusNotFound, map[string]interface{}{
		"error":     fmt.Sprintf("ronda inválida: %s", rondaID),
		"valid_ids": h.service.ValidIDs(),
	})
}
