package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Equipment is a canonical, shared description of an item's stats. Records are
// referenced by inventory items of many users and are not owned by any one of
// them; see InventoryItem for the reference-counted lifetime rule.
type Equipment struct {
	Model
	CustomID              string       `json:"customId" db:"custom_id"`
	Name                  string       `json:"name" db:"name"`
	CategoryRange         string       `json:"categoryRange" db:"category_range"`
	EquipmentCategoryName string       `json:"equipmentCategoryName" db:"equipment_category"`
	RarityName            string       `json:"rarityName" db:"rarity"`
	Damage                Damage       `json:"damage" db:"damage"`
	TwoHandedDamage       Damage       `json:"twoHandedDamage" db:"two_handed_damage"`
	Range                 Range        `json:"range" db:"attack_range"`
	ThrowRange            Range        `json:"throwRange" db:"throw_range"`
	Properties            PropertyList `json:"properties" db:"properties"`
	RequiresAttunement    bool         `json:"requiresAttunement" db:"requires_attunement"`
	Magical               bool         `json:"magical" db:"magical"`
	Weight                *float64     `json:"weight" db:"weight"`
	Cost                  Cost         `json:"cost" db:"cost"`
	Descriptions          StringList   `json:"desc" db:"descriptions"`
	Effects               EffectList   `json:"effects" db:"effects"`
	CreatedBy             *uuid.UUID   `json:"-" db:"created_by"`
}

type Damage struct {
	DiceExpression string `json:"diceExpression"`
	DamageTypeName string `json:"damageTypeName"`
}

type Range struct {
	Normal *int `json:"normal"`
	Long   *int `json:"long"`
}

type Cost struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
}

type Property struct {
	Name string `json:"name"`
}

type Effect struct {
	EffectName        string `json:"effectName"`
	EffectDescription string `json:"effectDescription"`
}

type PropertyList []Property

type EffectList []Effect

type StringList []string

// The nested equipment values are persisted as JSONB columns.

func (d Damage) Value() (driver.Value, error)  { return json.Marshal(d) }
func (d *Damage) Scan(src any) error           { return scanJSON(src, d) }
func (r Range) Value() (driver.Value, error)   { return json.Marshal(r) }
func (r *Range) Scan(src any) error            { return scanJSON(src, r) }
func (c Cost) Value() (driver.Value, error)    { return json.Marshal(c) }
func (c *Cost) Scan(src any) error             { return scanJSON(src, c) }
func (e EffectList) Value() (driver.Value, error) {
	if e == nil {
		e = EffectList{}
	}
	return json.Marshal(e)
}
func (e *EffectList) Scan(src any) error { return scanJSON(src, e) }
func (p PropertyList) Value() (driver.Value, error) {
	if p == nil {
		p = PropertyList{}
	}
	return json.Marshal(p)
}
func (p *PropertyList) Scan(src any) error { return scanJSON(src, p) }
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}
func (s *StringList) Scan(src any) error { return scanJSON(src, s) }

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported jsonb source type")
	}
}
