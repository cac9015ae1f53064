package ws

import (
	"encoding/json"
	"testing"
	"time"

	"bazar-dor-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishQueuesJSON(t *testing.T) {
	h := NewHub()
	prev := 100.0

	h.Publish(model.CatalogEvent{
		Type:          model.EventTypeCatalogUpdate,
		Action:        model.ActionProductUpdated,
		ProductID:     "p-1",
		PreviousPrice: &prev,
		Actor:         model.EventActor{ID: "u-1", Name: "Admin"},
		At:            time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	})

	require.Len(t, h.Broadcast, 1)
	var got map[string]any
	require.NoError(t, json.Unmarshal(<-h.Broadcast, &got))
	assert.Equal(t, "catalog_update", got["type"])
	assert.Equal(t, "product_updated", got["action"])
	assert.Equal(t, 100.0, got["previous_price"])
}

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer+10; i++ {
			h.Publish(model.CatalogEvent{Action: model.ActionProductDeleted})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
	assert.Len(t, h.Broadcast, broadcastBuffer)
	assert.Zero(t, h.ClientCount())
}
