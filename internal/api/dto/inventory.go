package dto

import (
	"time"

	"armory/internal/domain"
)

type InventoryItem struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	EquipmentID    string     `json:"equipmentId"`
	Quantity       int        `json:"quantity"`
	Customizations string     `json:"customizations"`
	AcquiredDate   time.Time  `json:"acquiredDate"`
	Equipment      *Equipment `json:"equipment,omitempty"`
}

func InventoryItemFromDomain(item *domain.InventoryItem) *InventoryItem {
	if item == nil {
		return nil
	}

	return &InventoryItem{
		ID:             item.ID.String(),
		UserID:         item.UserID.String(),
		EquipmentID:    item.EquipmentID.String(),
		Quantity:       item.Quantity,
		Customizations: item.Customizations,
		AcquiredDate:   item.AcquiredDate,
		Equipment:      EquipmentFromDomain(item.Equipment),
	}
}

func InventoryItemsFromDomain(items []*domain.InventoryItem) []*InventoryItem {
	result := make([]*InventoryItem, len(items))
	for i, item := range items {
		result[i] = InventoryItemFromDomain(item)
	}
	return result
}

// AddInventoryRequest wraps the raw item exactly as the caller has it.
type AddInventoryRequest struct {
	Item CatalogItem `json:"item"`
}

type UpdateInventoryRequest struct {
	Quantity       *int            `json:"quantity"`
	Customizations *string         `json:"customizations"`
	EquipmentData  *EquipmentPatch `json:"equipmentData"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
