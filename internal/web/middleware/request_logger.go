// Package middleware contains fiber middlewares shared by all routes.
package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
func RequestLogger(log *logrus.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		var ferr *fiber.Error
		if err != nil {
			status = fiber.StatusInternalServerError
			if errors.As(err, &ferr) {
				status = ferr.Code
			}
		}
		log.WithFields(logrus.Fields{
			"method":      c.Method(),
			"path":        c.OriginalURL(),
			"status":      status,
			"duration_ms": float64(dur.Microseconds()) / 1000.0,
			"request_id":  reqID,
		}).Info("http")
		return err
	}
}
