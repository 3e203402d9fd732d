package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	contextPkg "PersonalFinance/pkg/context"
	"PersonalFinance/pkg/utils"
)

const (
	RequestIDKey = contextPkg.LocalsRequestIDKey

	maxRequestIDLength = 64
)

// NewRequestIDMiddleware keeps a caller-supplied X-Request-ID when it is short
// printable ASCII and otherwise assigns a fresh ULID.
func NewRequestIDMiddleware() fiber.Handler {
	utilsInstance := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if !validRequestID(requestID) {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
