package repository

import (
	"context"
	"testing"

	"agrimarket/internal/database"
	"agrimarket/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEquipmentDB(t *testing.T) *EquipmentRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&equipmentModel{}))

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	for _, e := range []*domain.Equipment{
		{SellerID: 1, Name: "Tractor", PricePerHour: 500, IsAvailable: true},
		{SellerID: 1, Name: "Rotavator", PricePerHour: 300, IsAvailable: false},
		{SellerID: 2, Name: "Harvester", PricePerHour: 900, IsAvailable: true},
	} {
		require.NoError(t, repo.Create(ctx, e))
	}
	return repo
}

func TestEquipmentRepository_ListAvailable_SellerFilter(t *testing.T) {
	repo := seedEquipmentDB(t)

	list, err := repo.ListAvailable(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Tractor", list[0].Name)
}

func TestEquipmentRepository_ListAvailable_Unfiltered(t *testing.T) {
	repo := seedEquipmentDB(t)

	list, err := repo.ListAvailable(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	for _, e := range list {
		assert.True(t, e.IsAvailable)
	}
}
