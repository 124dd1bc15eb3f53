package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rondas/internal/api/handlers"
	"rondas/internal/config"
	"rondas/internal/domain"
	"rondas/internal/storage"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func SetupRoutes(e *echo.Echo, registry *domain.Registry, backend *storage.Backend, cfg *config.Config) {
	e.Validator = NewValidator()

	e.GET("/health", healthCheck(cfg))

	rondaHandler := handlers.NewRondaHandler(registry, backend)
	apiGroup := e.Group("/api")
	apiGroup.GET("/rondas/checkpoint", rondaHandler.GetCheckpoint)
	apiGroup.POST("/rondas", rondaHandler.Submit)
}

func healthCheck(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": cfg.Version,
		})
	}
}
