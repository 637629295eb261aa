package fiber

import (
	"crypto/subtle"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	HeaderRequestID = "X-Request-ID"
	localsLogger    = "logger"
)

var discardLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// RequestLogger stamps every request with a request id and logs its outcome.
// Handlers reach the request scoped entry through requestLogger.
func RequestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(HeaderRequestID, reqID)

		entry := log.WithFields(logrus.Fields{
			"req_id":     reqID,
			"method":     c.Method(),
			"path":       c.Path(),
			"remote_ip":  c.IP(),
			"user_agent": c.Get(fiber.HeaderUserAgent),
		})
		c.Locals(localsLogger, entry)

		start := time.Now()
		err := c.Next()

		fields := logrus.Fields{
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			entry.WithFields(fields).WithError(err).Warn("request failed")
			return err
		}
		entry.WithFields(fields).Info("request completed")
		return nil
	}
}

func requestLogger(c *fiber.Ctx) logrus.FieldLogger {
	if l, ok := c.Locals(localsLogger).(logrus.FieldLogger); ok {
		return l
	}
	return discardLogger
}

// PasswordGate asks for the shared dashboard password through basic auth.
// Any user name is accepted. An empty password disables the gate; the
// liveness probe and the API docs stay public.
func PasswordGate(password string) fiber.Handler {
	if password == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return basicauth.New(basicauth.Config{
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return p == "/healthz" || strings.HasPrefix(p, "/docs")
		},
		Realm: "Contact Analytics",
		Authorizer: func(_, pass string) bool {
			return subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Contact Analytics"`)
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "password incorrect",
			})
		},
	})
}
