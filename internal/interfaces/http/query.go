package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// queryDate lee un query param de fecha YYYY-MM-DD. Devuelve nil si falta o es inválido.
func queryDate(c *fiber.Ctx, key string) *time.Time {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// paramInt64 lee un path param numérico (ids del libro de entradas/salidas).
func paramInt64(c *fiber.Ctx, key string) (int64, bool) {
	n, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
