package ordersvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/service"
	ordermodels "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/orders/models"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/logger"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/order"
)

// SnapshotService persists saved order snapshots, capped per user.
type SnapshotService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.OrderSnapshot]
}

// NewSnapshotService creates the service bound to the orders collection.
func NewSnapshotService() (*SnapshotService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &SnapshotService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.OrderSnapshot](collection),
	}, nil
}

// Save stores a snapshot of the user's draft and prunes the user's history
// down to the newest SavedOrdersLimit records.
func (s *SnapshotService) Save(ctx context.Context, userID string, snap order.Snapshot) (*ordermodels.OrderSnapshot, error) {
	record := ordermodels.OrderSnapshot{
		OrderID: snap.ID,
		UserID:  userID,
		Lines:   snap.Lines,
		Total:   snap.Total,
		SavedAt: time.Now().UnixMilli(),
	}

	saved, err := s.InsertOne(ctx, record)
	if err != nil {
		return nil, common.ErrPersistenceFailure
	}

	if err := s.prune(ctx, userID); err != nil {
		// Pruning failure does not undo the save; the cap catches up on the
		// next write.
		logger.GetErrorLogger().WithError(err).Warn("Could not prune saved orders")
	}

	return &saved, nil
}

// prune removes the user's oldest snapshots beyond the cap.
func (s *SnapshotService) prune(ctx context.Context, userID string) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "savedAt", Value: -1}}).
		SetSkip(int64(ordermodels.SavedOrdersLimit)).
		SetProjection(bson.M{"_id": 1})

	stale, err := s.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]interface{}, 0, len(stale))
	for _, rec := range stale {
		ids = append(ids, rec.ID)
	}

	_, err = s.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

// ListForUser returns the user's saved snapshots, newest first.
func (s *SnapshotService) ListForUser(ctx context.Context, userID string) ([]ordermodels.OrderSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "savedAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

// GetForUser returns the user's snapshot with the given order id.
func (s *SnapshotService) GetForUser(ctx context.Context, userID, orderID string) (*ordermodels.OrderSnapshot, error) {
	record, err := s.FindOne(ctx, bson.M{"userId": userID, "orderId": orderID}, nil)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteForUser removes the user's snapshot with the given order id.
func (s *SnapshotService) DeleteForUser(ctx context.Context, userID, orderID string) error {
	return s.DeleteOne(ctx, bson.M{"userId": userID, "orderId": orderID})
}

// Duplicate stores a copy of an existing snapshot under a fresh order id and
// savedAt, honoring the per-user cap.
func (s *SnapshotService) Duplicate(ctx context.Context, userID, orderID string) (*ordermodels.OrderSnapshot, error) {
	source, err := s.GetForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	copySnap := source.ToDomain()
	copySnap.ID = uuid.NewString()
	return s.Save(ctx, userID, copySnap)
}
