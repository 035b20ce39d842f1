package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/mealmatch/backend/internal/mealplan"
)

// DefaultArchiveURLExpiry is how long a presigned plan URL stays valid
const DefaultArchiveURLExpiry = 24 * time.Hour

// ObjectStore is the subset of the S3 wrapper the archive needs
type ObjectStore interface {
	PutJSON(ctx context.Context, objectKey string, body []byte) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// ObjectPlanArchive writes plans as JSON documents to an object store
type ObjectPlanArchive struct {
	store  ObjectStore
	expiry time.Duration
	newID  func() uuid.UUID
}

// NewObjectPlanArchive creates an archive. A non-positive expiry uses
// DefaultArchiveURLExpiry.
func NewObjectPlanArchive(store ObjectStore, expiry time.Duration) *ObjectPlanArchive {
	if expiry <= 0 {
		expiry = DefaultArchiveURLExpiry
	}
	return &ObjectPlanArchive{store: store, expiry: expiry, newID: uuid.New}
}

// ArchivePlan uploads result to meal-plans/<goal>/<id>.json and returns a
// presigned download URL
func (a *ObjectPlanArchive) ArchivePlan(ctx context.Context, result *mealplan.PlanResult) (string, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode meal plan: %w", err)
	}
	key := PlanObjectKey(result.Preferences.HealthGoal, a.newID())
	if err := a.store.PutJSON(ctx, key, body); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return a.store.GeneratePresignedURL(ctx, key, a.expiry)
}

// PlanObjectKey is the object key of an archived plan
func PlanObjectKey(goal mealplan.HealthGoal, id uuid.UUID) string {
	return fmt.Sprintf("meal-plans/%s/%s.json", goal, id)
}
