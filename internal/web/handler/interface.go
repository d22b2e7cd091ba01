package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config) error
}
