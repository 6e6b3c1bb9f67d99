package deck

import (
	"deck-reconciler/core/store"
	"deck-reconciler/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the deck service into the application loader.
type Feature struct {
	service *Service
}

// NewFeature creates the deck feature.
func NewFeature(st store.Store, resolver *catalog.Resolver, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(st, resolver, logger)}
}

// Service exposes the underlying service for commands and other features.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "deck"
}

// IsEnabled reports whether the feature is enabled. The deck feature is the
// application's reason to exist and is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
