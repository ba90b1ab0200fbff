package pendingcomponents

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/mo"

	"sentrybot/clients"
	"sentrybot/core"
	"sentrybot/models"
)

const (
	// pendingComponentKeyPrefix namespaces pending component keys in the store
	pendingComponentKeyPrefix = "pending:component:"
	// pendingComponentTTL bounds the lifetime of a pending component. The
	// store enforces it - expired records surface as an empty lookup, and a
	// later Put to the same key starts a fresh TTL.
	pendingComponentTTL = 5 * time.Minute
)

// PendingComponentKey computes the store key for a component ID. It is used
// both on write and on lookup.
func PendingComponentKey(id string) string {
	return pendingComponentKeyPrefix + id
}

type PendingComponentsService struct {
	store clients.KeyValueStore
}

func NewPendingComponentsService(store clients.KeyValueStore) *PendingComponentsService {
	return &PendingComponentsService{store: store}
}

func (s *PendingComponentsService) PutPendingComponent(
	ctx context.Context,
	component models.PendingComponent,
) error {
	log.Printf("📋 Starting to put pending component: %s", component.ComponentID())
	if component.ComponentID() == "" {
		return fmt.Errorf("component ID cannot be empty")
	}

	data, err := models.MarshalPendingComponent(component)
	if err != nil {
		return fmt.Errorf("failed to serialize pending component: %w", err)
	}

	key := PendingComponentKey(component.ComponentID())
	if err := s.store.Set(ctx, key, data, pendingComponentTTL); err != nil {
		return core.NewDependencyError(fmt.Errorf("failed to store pending component: %w", err))
	}

	log.Printf("📋 Completed successfully - put pending component: %s", component.ComponentID())
	return nil
}

func (s *PendingComponentsService) GetPendingComponent(
	ctx context.Context,
	id string,
) (mo.Option[models.PendingComponent], error) {
	log.Printf("📋 Starting to get pending component: %s", id)
	if id == "" {
		return mo.None[models.PendingComponent](), fmt.Errorf("component ID cannot be empty")
	}

	maybeData, err := s.store.Get(ctx, PendingComponentKey(id))
	if err != nil {
		return mo.None[models.PendingComponent](), core.NewDependencyError(
			fmt.Errorf("failed to load pending component: %w", err),
		)
	}
	if !maybeData.IsPresent() {
		// Absent or expired - both surface as an empty result, not an error
		log.Printf("📋 Completed successfully - no pending component for: %s", id)
		return mo.None[models.PendingComponent](), nil
	}

	component, err := models.UnmarshalPendingComponent(maybeData.MustGet())
	if err != nil {
		return mo.None[models.PendingComponent](), core.NewDependencyError(
			fmt.Errorf("failed to deserialize pending component: %w", err),
		)
	}

	log.Printf("📋 Completed successfully - got pending component: %s", id)
	return mo.Some(component), nil
}

func (s *PendingComponentsService) DeletePendingComponent(ctx context.Context, id string) error {
	log.Printf("📋 Starting to delete pending component: %s", id)
	if id == "" {
		return fmt.Errorf("component ID cannot be empty")
	}

	if err := s.store.Delete(ctx, PendingComponentKey(id)); err != nil {
		return core.NewDependencyError(fmt.Errorf("failed to delete pending component: %w", err))
	}

	log.Printf("📋 Completed successfully - deleted pending component: %s", id)
	return nil
}
