package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armory/internal/api/dto"
	"armory/internal/repository"
	"armory/internal/testutil"
)

func TestInventoryService_AddItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()

	service := newTestInventoryService()

	t.Run("first add creates a row at quantity 1", func(t *testing.T) {
		user := setupTestUser(t)
		item := &dto.CatalogItem{Index: uniqueName("longsword"), Name: uniqueName("Longsword")}

		result, err := service.AddItem(ctx, user.ID, item)
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, AddStatusCreated, result.Status())
		assert.Equal(t, 1, result.Item.Quantity)
		require.NotNil(t, result.Item.Equipment)
		assert.Equal(t, item.Name, result.Item.Equipment.Name)
	})

	t.Run("same name increments instead of duplicating", func(t *testing.T) {
		user := setupTestUser(t)
		item := &dto.CatalogItem{Index: uniqueName("dagger"), Name: uniqueName("Dagger")}

		first, err := service.AddItem(ctx, user.ID, item)
		require.NoError(t, err)
		require.True(t, first.Created)

		second, err := service.AddItem(ctx, user.ID, item)
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, AddStatusIncremented, second.Status())
		assert.Equal(t, first.Item.ID, second.Item.ID)
		assert.Equal(t, 2, second.Item.Quantity)

		inventory, err := service.ListForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, inventory, 1)
		assert.Equal(t, 2, inventory[0].Quantity)
	})

	t.Run("another user's inventory is not merged into", func(t *testing.T) {
		userA := setupTestUser(t)
		userB := setupTestUser(t)
		item := &dto.CatalogItem{Index: uniqueName("shield"), Name: uniqueName("Shield")}

		_, err := service.AddItem(ctx, userA.ID, item)
		require.NoError(t, err)

		result, err := service.AddItem(ctx, userB.ID, item)
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 1, result.Item.Quantity)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		user := setupTestUser(t)

		_, err := service.AddItem(ctx, user.ID, &dto.CatalogItem{Index: uniqueName("nameless")})
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestInventoryService_UpdateQuantity(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()

	service := newTestInventoryService()

	t.Run("sets the quantity", func(t *testing.T) {
		user := setupTestUser(t)
		result, err := service.AddItem(ctx, user.ID, &dto.CatalogItem{
			Index: uniqueName("arrows"), Name: uniqueName("Arrows"),
		})
		require.NoError(t, err)

		updated, err := service.UpdateQuantity(ctx, result.Item.ID, 20)
		require.NoError(t, err)
		assert.Equal(t, 20, updated.Quantity)
	})

	t.Run("zero rejected", func(t *testing.T) {
		user := setupTestUser(t)
		result, err := service.AddItem(ctx, user.ID, &dto.CatalogItem{
			Index: uniqueName("bolts"), Name: uniqueName("Bolts"),
		})
		require.NoError(t, err)

		_, err = service.UpdateQuantity(ctx, result.Item.ID, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = service.UpdateQuantity(ctx, result.Item.ID, -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		inventory, err := service.ListForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, inventory, 1)
		assert.Equal(t, 1, inventory[0].Quantity)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := service.UpdateQuantity(ctx, uuid.New(), 5)
		assert.ErrorIs(t, err, ErrInventoryItemNotFound)
	})
}

func TestInventoryService_UpdateItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()

	service := newTestInventoryService()

	t.Run("inventory fields only", func(t *testing.T) {
		user := setupTestUser(t)
		result, err := service.AddItem(ctx, user.ID, &dto.CatalogItem{
			Index: uniqueName("cloak"), Name: uniqueName("Cloak"),
		})
		require.NoError(t, err)

		updated, err := service.UpdateItem(ctx, result.Item.ID, &dto.UpdateInventoryRequest{
			Quantity:       intPtr(3),
			Customizations: strPtr("monogrammed"),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Quantity)
		assert.Equal(t, "monogrammed", updated.Customizations)
	})

	t.Run("equipment patch cascades to the shared record", func(t *testing.T) {
		user := setupTestUser(t)
		result, err := service.AddItem(ctx, user.ID, &dto.CatalogItem{
			Index: uniqueName("flametongue"), Name: uniqueName("Flame Tongue"),
		})
		require.NoError(t, err)

		newName := uniqueName("Flame Tongue Greatsword")
		updated, err := service.UpdateItem(ctx, result.Item.ID, &dto.UpdateInventoryRequest{
			EquipmentData: &dto.EquipmentPatch{
				Name:    strPtr(newName),
				Magical: boolPtr(true),
			},
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Equipment)
		assert.Equal(t, newName, updated.Equipment.Name)
		assert.True(t, updated.Equipment.Magical)

		stored, err := newTestEquipmentService().GetByID(ctx, result.Item.EquipmentID)
		require.NoError(t, err)
		assert.Equal(t, newName, stored.Name)
	})

	t.Run("invalid quantity rejected", func(t *testing.T) {
		user := setupTestUser(t)
		result, err := service.AddItem(ctx, user.ID, &dto.CatalogItem{
			Index: uniqueName("boots"), Name: uniqueName("Boots"),
		})
		require.NoError(t, err)

		_, err = service.UpdateItem(ctx, result.Item.ID, &dto.UpdateInventoryRequest{
			Quantity: intPtr(0),
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := service.UpdateItem(ctx, uuid.New(), &dto.UpdateInventoryRequest{})
		assert.ErrorIs(t, err, ErrInventoryItemNotFound)
	})
}

func TestInventoryService_DeleteItem(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()

	service := newTestInventoryService()
	equipmentRepo := repository.NewEquipmentRepository(testDB)

	t.Run("last reference removes the equipment record", func(t *testing.T) {
		user := setupTestUser(t)
		result, err := service.AddItem(ctx, user.ID, &dto.CatalogItem{
			Index: uniqueName("rope"), Name: uniqueName("Rope"),
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteItem(ctx, result.Item.ID))

		_, err = equipmentRepo.FindByID(result.Item.EquipmentID)
		assert.ErrorIs(t, err, repository.ErrEquipmentNotFound)
	})

	t.Run("shared equipment record survives other users' rows", func(t *testing.T) {
		userA := setupTestUser(t)
		userB := setupTestUser(t)
		item := &dto.CatalogItem{Index: uniqueName("lantern"), Name: uniqueName("Lantern")}

		resultA, err := service.AddItem(ctx, userA.ID, item)
		require.NoError(t, err)
		_, err = service.AddItem(ctx, userB.ID, item)
		require.NoError(t, err)

		require.NoError(t, service.DeleteItem(ctx, resultA.Item.ID))

		eq, err := equipmentRepo.FindByID(resultA.Item.EquipmentID)
		require.NoError(t, err)
		assert.Equal(t, resultA.Item.EquipmentID, eq.ID)
	})

	t.Run("unknown item", func(t *testing.T) {
		err := service.DeleteItem(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrInventoryItemNotFound)
	})
}
