package dto

import (
	"time"

	"armory/internal/domain"
)

// Wire field names follow the original equipment schema (snake_case nested
// objects, customId token) so stored records can be re-submitted unchanged.

type Named struct {
	Name string `json:"name"`
}

type DamageOut struct {
	DamageDice string `json:"damage_dice"`
	DamageType Named  `json:"damage_type"`
}

type RangeOut struct {
	Normal *int `json:"normal"`
	Long   *int `json:"long"`
}

type CostOut struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
}

type EffectOut struct {
	EffectName        string `json:"effectName"`
	EffectDescription string `json:"effectDescription"`
}

type Equipment struct {
	ID                 string      `json:"id"`
	CustomID           string      `json:"customId"`
	Name               string      `json:"name"`
	CategoryRange      string      `json:"category_range"`
	EquipmentCategory  Named       `json:"equipment_category"`
	Rarity             Named       `json:"rarity"`
	Damage             DamageOut   `json:"damage"`
	TwoHandedDamage    DamageOut   `json:"two_handed_damage"`
	Range              RangeOut    `json:"range"`
	ThrowRange         RangeOut    `json:"throw_range"`
	Properties         []Named     `json:"properties"`
	RequiresAttunement bool        `json:"requires_attunement"`
	Magical            bool        `json:"magical"`
	Weight             *float64    `json:"weight"`
	Cost               CostOut     `json:"cost"`
	Desc               []string    `json:"desc"`
	Effects            []EffectOut `json:"effects"`
	CreatedAt          time.Time   `json:"createdAt"`
}

func EquipmentFromDomain(eq *domain.Equipment) *Equipment {
	if eq == nil {
		return nil
	}

	properties := make([]Named, len(eq.Properties))
	for i, p := range eq.Properties {
		properties[i] = Named{Name: p.Name}
	}

	effects := make([]EffectOut, len(eq.Effects))
	for i, e := range eq.Effects {
		effects[i] = EffectOut{EffectName: e.EffectName, EffectDescription: e.EffectDescription}
	}

	desc := eq.Descriptions
	if desc == nil {
		desc = domain.StringList{}
	}

	return &Equipment{
		ID:                eq.ID.String(),
		CustomID:          eq.CustomID,
		Name:              eq.Name,
		CategoryRange:     eq.CategoryRange,
		EquipmentCategory: Named{Name: eq.EquipmentCategoryName},
		Rarity:            Named{Name: eq.RarityName},
		Damage: DamageOut{
			DamageDice: eq.Damage.DiceExpression,
			DamageType: Named{Name: eq.Damage.DamageTypeName},
		},
		TwoHandedDamage: DamageOut{
			DamageDice: eq.TwoHandedDamage.DiceExpression,
			DamageType: Named{Name: eq.TwoHandedDamage.DamageTypeName},
		},
		Range:              RangeOut{Normal: eq.Range.Normal, Long: eq.Range.Long},
		ThrowRange:         RangeOut{Normal: eq.ThrowRange.Normal, Long: eq.ThrowRange.Long},
		Properties:         properties,
		RequiresAttunement: eq.RequiresAttunement,
		Magical:            eq.Magical,
		Weight:             eq.Weight,
		Cost:               CostOut{Quantity: eq.Cost.Quantity, Unit: eq.Cost.Unit},
		Desc:               desc,
		Effects:            effects,
		CreatedAt:          eq.CreatedAt,
	}
}

func EquipmentsFromDomain(records []*domain.Equipment) []*Equipment {
	result := make([]*Equipment, len(records))
	for i, eq := range records {
		result[i] = EquipmentFromDomain(eq)
	}
	return result
}
