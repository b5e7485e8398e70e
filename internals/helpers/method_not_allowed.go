package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MethodNotAllowed answers 405 with an Allow header listing the verbs a
// fixed-shape resource supports. Mount with router.All after the real verbs.
func MethodNotAllowed(allow ...string) fiber.Handler {
	header := strings.Join(allow, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, header)
		return JsonError(c, fiber.StatusMethodNotAllowed, "Method "+c.Method()+" not allowed")
	}
}
