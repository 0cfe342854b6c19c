// Package coeffsvc holds the coefficient configuration store.
package coeffsvc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/base/service"
	coeffmodels "github.com/mcweed-code/casa-fabio-parts-pro/internal/api/coefficient/models"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
)

// CoefficientService persists per-user coefficient configurations.
// Saves for the same user are serialized; a save completes before the next
// one for that user starts, and the last write wins.
type CoefficientService struct {
	*basesvc.BaseServiceMongoImpl[coeffmodels.CoefficientConfig]

	saveLocks sync.Map // userID -> *sync.Mutex
}

// NewCoefficientService creates the service bound to the coefficients
// collection.
func NewCoefficientService() (*CoefficientService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Coefficients)
	if !exist {
		return nil, fmt.Errorf("failed to get coefficients collection: %v", common.ErrNotFound)
	}

	return &CoefficientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[coeffmodels.CoefficientConfig](collection),
	}, nil
}

func (s *CoefficientService) userLock(userID string) *sync.Mutex {
	lock, _ := s.saveLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LoadForUser returns the user's configuration, or nil when none was saved
// yet. An absent record is not an error; the resolver applies defaults.
func (s *CoefficientService) LoadForUser(ctx context.Context, userID string) (*coeffmodels.CoefficientConfig, error) {
	cfg, err := s.FindOne(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// SaveForUser replaces the user's configuration with cfg.
func (s *CoefficientService) SaveForUser(ctx context.Context, userID string, mode string, generalPercent float64, perKeyPercents map[string]float64) (*coeffmodels.CoefficientConfig, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if perKeyPercents == nil {
		perKeyPercents = map[string]float64{}
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"userId":         userID,
			"mode":           mode,
			"generalPercent": generalPercent,
			"perKeyPercents": perKeyPercents,
		},
	}

	saved, err := s.Upsert(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return nil, common.ErrPersistenceFailure
	}
	return &saved, nil
}
