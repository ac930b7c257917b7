package dto

// EquipmentForm is the user-authored creation shape (POST /equipment).
type EquipmentForm struct {
	Name               string    `json:"name"`
	CategoryRange      string    `json:"category_range"`
	Damage             *DamageIn `json:"damage"`
	TwoHandedDamage    *DamageIn `json:"two_handed_damage"`
	Range              *RangeOut `json:"range"`
	ThrowRange         *RangeOut `json:"throw_range"`
	Properties         []Named   `json:"properties"`
	EquipmentCategory  *Named    `json:"equipment_category"`
	Rarity             *Named    `json:"rarity"`
	RequiresAttunement bool      `json:"requires_attunement"`
	Magical            bool      `json:"magical"`
	Weight             *float64  `json:"weight"`
	Cost               *CostIn   `json:"cost"`
	Desc               []string  `json:"desc"`
	Effects            []EffectOut `json:"effects"`
}

// EquipmentPatch is the partial-update shape (PUT /equipment/:id). Absent
// fields leave the stored value untouched; the record id is never patchable.
type EquipmentPatch struct {
	Name               *string     `json:"name"`
	CategoryRange      *string     `json:"category_range"`
	Damage             *DamageIn   `json:"damage"`
	TwoHandedDamage    *DamageIn   `json:"two_handed_damage"`
	Range              *RangeOut   `json:"range"`
	ThrowRange         *RangeOut   `json:"throw_range"`
	Properties         []Named     `json:"properties"`
	EquipmentCategory  *Named      `json:"equipment_category"`
	Rarity             *Named      `json:"rarity"`
	RequiresAttunement *bool       `json:"requires_attunement"`
	Magical            *bool       `json:"magical"`
	Weight             *float64    `json:"weight"`
	Cost               *CostIn     `json:"cost"`
	Desc               []string    `json:"desc"`
	Effects            []EffectOut `json:"effects"`
}
