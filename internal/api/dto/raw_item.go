package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The add-to-inventory path accepts items in whatever shape the caller has on
// hand: the external catalog's payload, a stored record re-submitted from the
// UI, or a user-authored form. The Flex* types absorb the historical shape
// differences at decode time; unknown fields are dropped by encoding/json.

// CatalogItem is the external-catalog / re-submitted-record input shape.
type CatalogItem struct {
	EquipmentID        string         `json:"equipmentId"`
	Index              string         `json:"index"`
	Name               string         `json:"name"`
	CategoryRange      string         `json:"category_range"`
	CategoryLegacy     string         `json:"equipmentCategory"`
	EquipmentCategory  FlexName       `json:"equipment_category"`
	Rarity             FlexName       `json:"rarity"`
	Damage             FlexDamage     `json:"damage"`
	DamageType         string         `json:"damageType"`
	TwoHandedDamage    FlexDamage     `json:"two_handed_damage"`
	Range              FlexRange      `json:"range"`
	ThrowRange         FlexRange      `json:"throw_range"`
	Properties         FlexProperties `json:"properties"`
	RequiresAttunement bool           `json:"requires_attunement"`
	Magical            bool           `json:"magical"`
	Weight             *float64       `json:"weight"`
	Cost               CostIn         `json:"cost"`
	Desc               []string       `json:"desc"`
	Effects            []FlexEffect   `json:"effects"`
}

// ExternalKey is the catalog identifier the item arrived with, if any. It is
// what makes repeated adds of the same catalog entry idempotent.
func (c *CatalogItem) ExternalKey() string {
	if c.EquipmentID != "" {
		return c.EquipmentID
	}
	return c.Index
}

type DamageIn struct {
	DamageDice string `json:"damage_dice"`
	DamageType Named  `json:"damage_type"`
}

type CostIn struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
}

// FlexName decodes either a bare string or a {"name": ...} object.
type FlexName struct {
	Name string
}

func (f *FlexName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Name = s
		return nil
	}

	var obj Named
	if err := json.Unmarshal(data, &obj); err == nil {
		f.Name = obj.Name
		return nil
	}

	// Anything else (null, numbers) reads as absent.
	f.Name = ""
	return nil
}

// FlexDamage decodes either a bare dice-expression string ("1d8") or a
// {"damage_dice": ..., "damage_type": {"name": ...}} object.
type FlexDamage struct {
	DamageDice     string
	DamageTypeName string
}

func (f *FlexDamage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.DamageDice = s
		return nil
	}

	var obj DamageIn
	if err := json.Unmarshal(data, &obj); err == nil {
		f.DamageDice = obj.DamageDice
		f.DamageTypeName = obj.DamageType.Name
		return nil
	}

	f.DamageDice = ""
	f.DamageTypeName = ""
	return nil
}

// FlexRange decodes either a {"normal": N, "long": M} object or the legacy
// string form "Label: N", from which the number after ": " becomes normal and
// long stays null. A string without a parseable number reads as absent.
type FlexRange struct {
	Normal *int
	Long   *int
}

func (f *FlexRange) UnmarshalJSON(data []byte) error {
	var obj struct {
		Normal *int `json:"normal"`
		Long   *int `json:"long"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		f.Normal = obj.Normal
		f.Long = obj.Long
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if _, after, found := strings.Cut(s, ": "); found {
			if n, err := strconv.Atoi(strings.TrimSpace(after)); err == nil {
				f.Normal = &n
			}
		}
		return nil
	}

	f.Normal = nil
	f.Long = nil
	return nil
}

// FlexProperties decodes an array of strings or an array of name-bearing
// objects into a uniform name list.
type FlexProperties []string

func (f *FlexProperties) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = nil
		return nil
	}

	names := make([]string, 0, len(raw))
	for _, entry := range raw {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			names = append(names, s)
			continue
		}
		var obj Named
		if err := json.Unmarshal(entry, &obj); err == nil {
			names = append(names, obj.Name)
			continue
		}
		names = append(names, "")
	}

	*f = names
	return nil
}

// FlexEffect decodes either the catalog's {"name", "description"} pair or the
// canonical {"effectName", "effectDescription"} pair. Missing members default
// to empty strings.
type FlexEffect struct {
	EffectName        string
	EffectDescription string
}

func (f *FlexEffect) UnmarshalJSON(data []byte) error {
	var obj struct {
		Name              string `json:"name"`
		Description       string `json:"description"`
		EffectName        string `json:"effectName"`
		EffectDescription string `json:"effectDescription"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}

	f.EffectName = obj.EffectName
	if f.EffectName == "" {
		f.EffectName = obj.Name
	}
	f.EffectDescription = obj.EffectDescription
	if f.EffectDescription == "" {
		f.EffectDescription = obj.Description
	}
	return nil
}
