package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"armory/internal/domain"
)

var ErrInventoryItemNotFound = errors.New("inventory item not found")

type InventoryRepository struct {
	db            *sqlx.DB
	equipmentRepo *EquipmentRepository
}

func NewInventoryRepository(db *sqlx.DB) *InventoryRepository {
	return &InventoryRepository{
		db:            db,
		equipmentRepo: NewEquipmentRepository(db),
	}
}

func (r *InventoryRepository) Create(item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (user_id, equipment_id, quantity, customizations, acquired_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.db.QueryRow(query,
		item.UserID, item.EquipmentID, item.Quantity, item.Customizations, item.AcquiredDate,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *InventoryRepository) FindByID(id uuid.UUID) (*domain.InventoryItem, error) {
	query := `
		SELECT id, created_at, deleted_at, user_id, equipment_id, quantity, customizations, acquired_date
		FROM inventory_items
		WHERE id = $1 AND deleted_at IS NULL
	`

	item := &domain.InventoryItem{}
	err := r.db.Get(item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInventoryItemNotFound
		}
		return nil, err
	}

	return item, nil
}

// FindByUserID returns the user's inventory with equipment records resolved.
func (r *InventoryRepository) FindByUserID(userID uuid.UUID) ([]*domain.InventoryItem, error) {
	query := `
		SELECT id, created_at, deleted_at, user_id, equipment_id, quantity, customizations, acquired_date
		FROM inventory_items
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY acquired_date ASC, id ASC
	`

	items := []*domain.InventoryItem{}
	if err := r.db.Select(&items, query, userID); err != nil {
		return nil, err
	}

	if err := r.attachEquipment(items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *InventoryRepository) attachEquipment(items []*domain.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.EquipmentID)
	}

	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = ANY($1) AND deleted_at IS NULL`

	records := []*domain.Equipment{}
	if err := r.db.Select(&records, query, pq.Array(ids)); err != nil {
		return err
	}

	byID := make(map[uuid.UUID]*domain.Equipment, len(records))
	for _, eq := range records {
		byID[eq.ID] = eq
	}
	for _, item := range items {
		item.Equipment = byID[item.EquipmentID]
	}

	return nil
}

func (r *InventoryRepository) UpdateQuantity(id uuid.UUID, quantity int) error {
	result, err := r.db.Exec(
		`UPDATE inventory_items SET quantity = $1 WHERE id = $2 AND deleted_at IS NULL`,
		quantity, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *InventoryRepository) Update(item *domain.InventoryItem) error {
	result, err := r.db.Exec(
		`UPDATE inventory_items SET quantity = $1, customizations = $2 WHERE id = $3 AND deleted_at IS NULL`,
		item.Quantity, item.Customizations, item.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *InventoryRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// CountByEquipmentID reports how many inventory items still reference an
// equipment record, across all users.
func (r *InventoryRepository) CountByEquipmentID(equipmentID uuid.UUID) (int, error) {
	var count int
	err := r.db.Get(&count,
		`SELECT COUNT(*) FROM inventory_items WHERE equipment_id = $1 AND deleted_at IS NULL`,
		equipmentID,
	)
	return count, err
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInventoryItemNotFound
	}
	return nil
}
