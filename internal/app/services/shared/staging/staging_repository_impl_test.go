package staging

import (
	"context"
	"testing"
	"time"

	"clinicbook-service/internal/app/models"
	sharedredis "clinicbook-service/internal/app/services/shared/redis"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStagingForTest(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *stagingRepository) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	repo := NewStagingRepository(sharedredis.NewRedisRepository(client), ttl)
	return mr, repo.(*stagingRepository)
}

func buildIntentForTest(orderID string) *models.StagedBookingIntent {
	return &models.StagedBookingIntent{
		OrderID:         orderID,
		DoctorID:        "doctor-1",
		PatientID:       "patient-1",
		SlotID:          "slot-1",
		PatientName:     "Jane Doe",
		PatientEmail:    "jane@example.com",
		PatientPhone:    "+94771234567",
		Reason:          "follow up",
		ConsultationFee: 2500,
		StagedAt:        time.Now(),
	}
}

func TestStagingRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Save And Find Roundtrip", func(t *testing.T) {
		_, repo := buildStagingForTest(t, 30*time.Minute)
		intent := buildIntentForTest("order-1")

		require.NoError(t, repo.Save(ctx, intent))

		found, err := repo.Find(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, intent.OrderID, found.OrderID)
		assert.Equal(t, intent.SlotID, found.SlotID)
		assert.Equal(t, intent.ConsultationFee, found.ConsultationFee)
		assert.Equal(t, intent.PatientEmail, found.PatientEmail)
	})

	t.Run("An Order Is Staged Exactly Once", func(t *testing.T) {
		_, repo := buildStagingForTest(t, 30*time.Minute)
		intent := buildIntentForTest("order-1")
		require.NoError(t, repo.Save(ctx, intent))

		rewrite := buildIntentForTest("order-1")
		rewrite.SlotID = "slot-2"
		require.Error(t, repo.Save(ctx, rewrite), "a staged intent must never be overwritten")

		found, err := repo.Find(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, "slot-1", found.SlotID, "the original intent must survive")
	})

	t.Run("Find After TTL Reports Staging Expired", func(t *testing.T) {
		mr, repo := buildStagingForTest(t, 30*time.Minute)
		require.NoError(t, repo.Save(ctx, buildIntentForTest("order-1")))

		mr.FastForward(31 * time.Minute)

		_, err := repo.Find(ctx, "order-1")
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeStagingExpired))
	})

	t.Run("Find Unknown Order Reports Staging Expired", func(t *testing.T) {
		_, repo := buildStagingForTest(t, 30*time.Minute)

		_, err := repo.Find(ctx, "never-staged")
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeStagingExpired))
	})

	t.Run("Evict Removes The Intent", func(t *testing.T) {
		_, repo := buildStagingForTest(t, 30*time.Minute)
		require.NoError(t, repo.Save(ctx, buildIntentForTest("order-1")))

		require.NoError(t, repo.Evict(ctx, "order-1"))

		_, err := repo.Find(ctx, "order-1")
		assert.True(t, exceptions.HasCode(err, exceptions.CodeStagingExpired))
	})

	t.Run("Intents Are Keyed By Order ID", func(t *testing.T) {
		_, repo := buildStagingForTest(t, 30*time.Minute)
		require.NoError(t, repo.Save(ctx, buildIntentForTest("order-1")))
		require.NoError(t, repo.Save(ctx, buildIntentForTest("order-2")))

		require.NoError(t, repo.Evict(ctx, "order-1"))

		found, err := repo.Find(ctx, "order-2")
		require.NoError(t, err)
		assert.Equal(t, "order-2", found.OrderID)
	})
}
