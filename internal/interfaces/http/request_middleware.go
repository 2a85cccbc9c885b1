package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocalRequestID clave en c.Locals para el ID de la petición.
const LocalRequestID = "request_id"

// RequestID asigna un UUID a cada petición y lo expone en la respuesta.
// Si el cliente trae su propio X-Request-ID, se respeta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(LocalRequestID, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// AccessLog registra cada petición con método, ruta, status y latencia.
func AccessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		reqID, _ := c.Locals(LocalRequestID).(string)
		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
