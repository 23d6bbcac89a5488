package staging

import (
	"context"
	"errors"
	"time"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type stagingRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewStagingRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.StagingRepository {
	return &stagingRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func buildStagedBookingKey(orderID string) string {
	return constvars.RedisKeyStagedBookingPrefix + orderID
}

// Save stages the intent with NX semantics: an order id is staged exactly
// once and never overwritten.
func (r *stagingRepository) Save(ctx context.Context, intent *models.StagedBookingIntent) error {
	stored, err := r.RedisRepository.TrySetNX(ctx, buildStagedBookingKey(intent.OrderID), intent, r.TTL)
	if err != nil {
		return err
	}
	if !stored {
		return exceptions.ErrRedisSet(errors.New("a booking intent is already staged for this order"))
	}
	return nil
}

func (r *stagingRepository) Find(ctx context.Context, orderID string) (*models.StagedBookingIntent, error) {
	data, err := r.RedisRepository.Get(ctx, buildStagedBookingKey(orderID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrStagingExpired(nil)
	}

	intent := new(models.StagedBookingIntent)
	err = json.Unmarshal([]byte(data), intent)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return intent, nil
}

func (r *stagingRepository) Evict(ctx context.Context, orderID string) error {
	return r.RedisRepository.Delete(ctx, buildStagedBookingKey(orderID))
}
