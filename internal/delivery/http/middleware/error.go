package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobscout/internal/pkg/response"
)

// AppError carries an HTTP status alongside the underlying cause so
// handlers can return domain failures without building responses inline.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// ErrorHandler converts errors returned by handlers into the shared
// response envelope and recovers from panics inside the chain.
func ErrorHandler(log *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		var err error
		func() {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic: %v", r)
					log.Error("panic recovered",
						zap.String("path", c.Path()),
						zap.Any("panic", r),
					)
				}
			}()
			err = c.Next()
		}()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.Status >= 500 {
				log.Error("request failed",
					zap.String("path", c.Path()),
					zap.Int("status", appErr.Status),
					zap.Error(appErr),
				)
			}
			return response.Error(c, appErr.Status, appErr.Message, nil)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return response.Error(c, fiberErr.Code, fiberErr.Message, nil)
		}

		log.Error("unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
