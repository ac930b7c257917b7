package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"armory/internal/api/dto"
	"armory/internal/domain"
	"armory/internal/repository"
)

var (
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
)

const (
	AddStatusIncremented = "existing-incremented"
	AddStatusCreated     = "newly-created"
)

type AddResult struct {
	Item    *domain.InventoryItem
	Created bool
}

func (r *AddResult) Status() string {
	if r.Created {
		return AddStatusCreated
	}
	return AddStatusIncremented
}

type InventoryService struct {
	inventoryRepo    *repository.InventoryRepository
	equipmentRepo    *repository.EquipmentRepository
	equipmentService *EquipmentService
}

func NewInventoryService(
	inventoryRepo *repository.InventoryRepository,
	equipmentRepo *repository.EquipmentRepository,
	equipmentService *EquipmentService,
) *InventoryService {
	return &InventoryService{
		inventoryRepo:    inventoryRepo,
		equipmentRepo:    equipmentRepo,
		equipmentService: equipmentService,
	}
}

// AddItem resolves the raw item to an equipment record, then merges it into
// the user's inventory by equipment name: a same-named item gets its quantity
// bumped, otherwise a fresh row starts at quantity 1.
//
// Known limitation: the merge key is the name alone. Two equipment records
// with identical names but different stats still collapse into one inventory
// row pointing at whichever record resolved first.
func (s *InventoryService) AddItem(ctx context.Context, userID uuid.UUID, item *dto.CatalogItem) (*AddResult, error) {
	eq, err := s.equipmentService.FindOrCreateFromExternal(ctx, item)
	if err != nil {
		return nil, err
	}

	inventory, err := s.inventoryRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range inventory {
		if existing.Equipment == nil || existing.Equipment.Name != eq.Name {
			continue
		}

		existing.Quantity++
		if err := s.inventoryRepo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		return &AddResult{Item: existing, Created: false}, nil
	}

	newItem := &domain.InventoryItem{
		UserID:       userID,
		EquipmentID:  eq.ID,
		Quantity:     1,
		AcquiredDate: time.Now(),
	}
	if err := s.inventoryRepo.Create(newItem); err != nil {
		return nil, err
	}
	newItem.Equipment = eq

	return &AddResult{Item: newItem, Created: true}, nil
}

func (s *InventoryService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.InventoryItem, error) {
	return s.inventoryRepo.FindByUserID(userID)
}

// UpdateQuantity sets the quantity alone. Values below 1 are rejected, not
// clamped.
func (s *InventoryService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*domain.InventoryItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.inventoryRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, ErrInventoryItemNotFound
		}
		return nil, err
	}

	item.Quantity = quantity
	if err := s.inventoryRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem updates inventory-level fields and, when the request carries an
// equipment patch, the referenced equipment record too. The returned item has
// the equipment embedded only in that case, mirroring what callers render.
func (s *InventoryService) UpdateItem(ctx context.Context, itemID uuid.UUID, req *dto.UpdateInventoryRequest) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, ErrInventoryItemNotFound
		}
		return nil, err
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Customizations != nil {
		item.Customizations = *req.Customizations
	}

	if err := s.inventoryRepo.Update(item); err != nil {
		return nil, err
	}

	if req.EquipmentData != nil {
		eq, err := s.equipmentService.Update(ctx, item.EquipmentID, req.EquipmentData)
		if err != nil {
			return nil, err
		}
		item.Equipment = eq
	}

	return item, nil
}

// DeleteItem removes the inventory row, then garbage-collects the equipment
// record when no other inventory item references it. The cleanup is
// best-effort: a record already removed by a concurrent delete is not an
// error.
func (s *InventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.inventoryRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return ErrInventoryItemNotFound
		}
		return err
	}

	if err := s.inventoryRepo.Delete(item.ID); err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return ErrInventoryItemNotFound
		}
		return err
	}

	remaining, err := s.inventoryRepo.CountByEquipmentID(item.EquipmentID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		if err := s.equipmentRepo.Delete(item.EquipmentID); err != nil &&
			!errors.Is(err, repository.ErrEquipmentNotFound) {
			return err
		}
	}

	return nil
}
