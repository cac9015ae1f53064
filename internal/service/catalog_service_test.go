package service

import (
	"context"
	"testing"

	"bazar-dor-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSearch(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(model.SampleProducts(testNow)...))
	ctx := context.Background()

	all, err := svc.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 7)

	fish, err := svc.Search(ctx, "", "fish")
	require.NoError(t, err)
	require.Len(t, fish, 1)
	assert.Equal(t, "Hilsa Fish", fish[0].Name.EN)

	bangla, err := svc.Search(ctx, "ডিম", "")
	require.NoError(t, err)
	require.Len(t, bangla, 1)
	assert.Equal(t, "Eggs", bangla[0].Name.EN)

	none, err := svc.Search(ctx, "mango", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogInsightsAndTrends(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(model.SampleProducts(testNow)...))
	ctx := context.Background()

	ins, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, ins.TotalProducts)
	assert.Equal(t, 3, ins.Increasing)
	assert.Equal(t, 2, ins.Decreasing)
	assert.Equal(t, 2, ins.Stable)

	trends, err := svc.Trends(ctx)
	require.NoError(t, err)
	assert.Len(t, trends.Increases, 3)
	assert.Len(t, trends.Decreases, 2)
}

func TestCatalogLoadFailure(t *testing.T) {
	repo := newFakeProductRepo()
	repo.findErr = errStoreDown
	svc := NewCatalogService(repo)

	_, err := svc.Insights(context.Background())

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, OpLoad, perr.Op)
}

func TestCategoriesAreFixed(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo())
	cats := svc.Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, "vegetables", cats[0].ID)
}
