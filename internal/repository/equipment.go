package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"armory/internal/domain"
)

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrEquipmentExists   = errors.New("equipment already exists")
)

const equipmentColumns = `
	id, created_at, deleted_at, custom_id, name, category_range, equipment_category,
	rarity, damage, two_handed_damage, attack_range, throw_range, properties,
	requires_attunement, magical, weight, cost, descriptions, effects, created_by
`

type EquipmentRepository struct {
	db *sqlx.DB
}

func NewEquipmentRepository(db *sqlx.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(eq *domain.Equipment) error {
	query := `
		INSERT INTO equipment (
			custom_id, name, category_range, equipment_category, rarity,
			damage, two_handed_damage, attack_range, throw_range, properties,
			requires_attunement, magical, weight, cost, descriptions, effects, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(query,
		eq.CustomID, eq.Name, eq.CategoryRange, eq.EquipmentCategoryName, eq.RarityName,
		eq.Damage, eq.TwoHandedDamage, eq.Range, eq.ThrowRange, eq.Properties,
		eq.RequiresAttunement, eq.Magical, eq.Weight, eq.Cost, eq.Descriptions,
		eq.Effects, eq.CreatedBy,
	).Scan(&eq.ID, &eq.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEquipmentExists
		}
		return err
	}

	return nil
}

func (r *EquipmentRepository) FindByID(id uuid.UUID) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND deleted_at IS NULL`

	eq := &domain.Equipment{}
	err := r.db.Get(eq, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	return eq, nil
}

func (r *EquipmentRepository) FindByCustomID(customID string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE custom_id = $1 AND deleted_at IS NULL`

	eq := &domain.Equipment{}
	err := r.db.Get(eq, query, customID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	return eq, nil
}

func (r *EquipmentRepository) FindByCreatedBy(userID uuid.UUID) ([]*domain.Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipment
		WHERE created_by = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC
	`

	items := []*domain.Equipment{}
	if err := r.db.Select(&items, query, userID); err != nil {
		return nil, err
	}

	return items, nil
}

// Update persists every mutable column of the record. The id and custom_id are
// never touched, so a patch payload can not rewrite either.
func (r *EquipmentRepository) Update(eq *domain.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, category_range = $2, equipment_category = $3, rarity = $4,
			damage = $5, two_handed_damage = $6, attack_range = $7, throw_range = $8,
			properties = $9, requires_attunement = $10, magical = $11, weight = $12,
			cost = $13, descriptions = $14, effects = $15
		WHERE id = $16 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		eq.Name, eq.CategoryRange, eq.EquipmentCategoryName, eq.RarityName,
		eq.Damage, eq.TwoHandedDamage, eq.Range, eq.ThrowRange, eq.Properties,
		eq.RequiresAttunement, eq.Magical, eq.Weight, eq.Cost, eq.Descriptions,
		eq.Effects, eq.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

func (r *EquipmentRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}
