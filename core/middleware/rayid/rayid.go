// Package rayid assigns a unique request identifier to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the generated RayID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key under which the RayID is stored.
const LocalsKey = "ray_id"

// New returns a middleware that generates a RayID per request, stores it in
// the context locals and echoes it in the response headers. An incoming
// X-Ray-ID header is honored so upstream proxies can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
