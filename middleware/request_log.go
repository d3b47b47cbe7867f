package middleware

import (
	"time"

	"museum-booking/logger"
	"museum-booking/types"
	"museum-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// LogSink receives a sanitized copy of every request/response pair.
type LogSink interface {
	Log(entry types.LogEntry)
}

// RequestLog logs every request to stdout and, when sink is not nil, hands a
// sanitized copy to it.
func RequestLog(sink LogSink) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		level := log.LevelInfo
		switch {
		case status >= fiber.StatusInternalServerError:
			level = log.LevelError
		case status >= fiber.StatusBadRequest:
			level = log.LevelWarn
		}
		logger.PrintfWithLevel(level, "%s %s -> %d (%s)", c.Method(), c.OriginalURL(), status, latency)

		if sink != nil {
			sink.Log(utils.CreateSanitizedLogEntry(c, latency))
		}
		return err
	}
}
