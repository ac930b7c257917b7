package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a user's owned quantity of one Equipment record. The
// referenced Equipment stays alive for as long as at least one inventory item
// points at it; deleting the last reference deletes the record too.
type InventoryItem struct {
	Model
	UserID         uuid.UUID  `json:"userId" db:"user_id"`
	EquipmentID    uuid.UUID  `json:"equipmentId" db:"equipment_id"`
	Quantity       int        `json:"quantity" db:"quantity"`
	Customizations string     `json:"customizations" db:"customizations"`
	AcquiredDate   time.Time  `json:"acquiredDate" db:"acquired_date"`
	Equipment      *Equipment `json:"equipment,omitempty" db:"-"`
}
