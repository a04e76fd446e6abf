package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alta/internal/domain"
)

func Test_Emit_AppendsInOrder(t *testing.T) {
	store := NewMemoryStore()
	publisher := NewPublisher(store)
	ctx := context.Background()
	id := domain.NewEntityIdentity("12345678", "211234560014")

	stamped := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, publisher.Emit(ctx, Record{
		Identity:  id,
		Status:    domain.Status{Code: domain.StatusIngreso},
		Timestamp: stamped,
	}))
	require.NoError(t, publisher.Emit(ctx, Record{
		Identity: id,
		Status:   domain.Status{Code: domain.StatusRetoma},
	}))

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, domain.StatusIngreso, records[0].Status.Code)
	assert.Equal(t, stamped, records[0].Timestamp)

	// A zero timestamp is stamped at emit time.
	assert.Equal(t, domain.StatusRetoma, records[1].Status.Code)
	assert.False(t, records[1].Timestamp.IsZero())
}
