package services

import (
	"errors"
	"strings"

	"armory/internal/api/dto"
	"armory/internal/domain"
)

var ErrNameRequired = errors.New("name is required")

// The normalizer turns the three accepted input shapes (catalog payload,
// user-authored form, partial patch) into the canonical Equipment record. Name
// is the only hard-required field; every nested value defaults to empty/null
// when absent. Pure transforms — persistence happens in EquipmentService.

func NormalizeCatalogItem(item *dto.CatalogItem) (*domain.Equipment, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrNameRequired
	}

	damageType := item.Damage.DamageTypeName
	if damageType == "" {
		damageType = item.DamageType
	}

	eq := &domain.Equipment{
		Name:                  item.Name,
		CategoryRange:         firstNonEmpty(item.CategoryRange, item.CategoryLegacy),
		EquipmentCategoryName: firstNonEmpty(item.EquipmentCategory.Name, item.CategoryLegacy),
		RarityName:            item.Rarity.Name,
		Damage: domain.Damage{
			DiceExpression: item.Damage.DamageDice,
			DamageTypeName: damageType,
		},
		TwoHandedDamage: domain.Damage{
			DiceExpression: item.TwoHandedDamage.DamageDice,
			DamageTypeName: item.TwoHandedDamage.DamageTypeName,
		},
		Range:              domain.Range{Normal: item.Range.Normal, Long: item.Range.Long},
		ThrowRange:         domain.Range{Normal: item.ThrowRange.Normal, Long: item.ThrowRange.Long},
		Properties:         propertiesFromNames(item.Properties),
		RequiresAttunement: item.RequiresAttunement,
		Magical:            item.Magical,
		Weight:             item.Weight,
		Cost:               domain.Cost{Quantity: item.Cost.Quantity, Unit: item.Cost.Unit},
		Descriptions:       descriptions(item.Desc),
		Effects:            effectsFromFlex(item.Effects),
	}

	return eq, nil
}

func NormalizeForm(form *dto.EquipmentForm) (*domain.Equipment, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, ErrNameRequired
	}

	eq := &domain.Equipment{
		Name:                  form.Name,
		CategoryRange:         form.CategoryRange,
		EquipmentCategoryName: namedValue(form.EquipmentCategory),
		RarityName:            namedValue(form.Rarity),
		Damage:                damageValue(form.Damage),
		TwoHandedDamage:       damageValue(form.TwoHandedDamage),
		Range:                 rangeValue(form.Range),
		ThrowRange:            rangeValue(form.ThrowRange),
		Properties:            propertiesFromNamed(form.Properties),
		RequiresAttunement:    form.RequiresAttunement,
		Magical:               form.Magical,
		Weight:                form.Weight,
		Cost:                  costValue(form.Cost),
		Descriptions:          descriptions(form.Desc),
		Effects:               effectsFromOut(form.Effects),
	}

	return eq, nil
}

// ApplyPatch overwrites the present fields of a stored record. A patch
// carrying an empty cost object (no quantity, no unit) leaves the stored cost
// alone instead of persisting a half-empty nested value.
func ApplyPatch(eq *domain.Equipment, patch *dto.EquipmentPatch) error {
	if patch.Name == nil || strings.TrimSpace(*patch.Name) == "" {
		return ErrNameRequired
	}
	eq.Name = *patch.Name

	if patch.CategoryRange != nil {
		eq.CategoryRange = *patch.CategoryRange
	}
	if patch.EquipmentCategory != nil {
		eq.EquipmentCategoryName = patch.EquipmentCategory.Name
	}
	if patch.Rarity != nil {
		eq.RarityName = patch.Rarity.Name
	}
	if patch.Damage != nil {
		eq.Damage = damageValue(patch.Damage)
	}
	if patch.TwoHandedDamage != nil {
		eq.TwoHandedDamage = damageValue(patch.TwoHandedDamage)
	}
	if patch.Range != nil {
		eq.Range = rangeValue(patch.Range)
	}
	if patch.ThrowRange != nil {
		eq.ThrowRange = rangeValue(patch.ThrowRange)
	}
	if patch.Properties != nil {
		eq.Properties = propertiesFromNamed(patch.Properties)
	}
	if patch.RequiresAttunement != nil {
		eq.RequiresAttunement = *patch.RequiresAttunement
	}
	if patch.Magical != nil {
		eq.Magical = *patch.Magical
	}
	if patch.Weight != nil {
		eq.Weight = patch.Weight
	}
	if patch.Cost != nil && (patch.Cost.Quantity != nil || patch.Cost.Unit != "") {
		eq.Cost = domain.Cost{Quantity: patch.Cost.Quantity, Unit: patch.Cost.Unit}
	}
	if patch.Desc != nil {
		eq.Descriptions = descriptions(patch.Desc)
	}
	if patch.Effects != nil {
		eq.Effects = effectsFromOut(patch.Effects)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func namedValue(n *dto.Named) string {
	if n == nil {
		return ""
	}
	return n.Name
}

func damageValue(d *dto.DamageIn) domain.Damage {
	if d == nil {
		return domain.Damage{}
	}
	return domain.Damage{DiceExpression: d.DamageDice, DamageTypeName: d.DamageType.Name}
}

func rangeValue(r *dto.RangeOut) domain.Range {
	if r == nil {
		return domain.Range{}
	}
	return domain.Range{Normal: r.Normal, Long: r.Long}
}

func costValue(c *dto.CostIn) domain.Cost {
	if c == nil {
		return domain.Cost{}
	}
	return domain.Cost{Quantity: c.Quantity, Unit: c.Unit}
}

func propertiesFromNames(names []string) domain.PropertyList {
	props := make(domain.PropertyList, len(names))
	for i, name := range names {
		props[i] = domain.Property{Name: name}
	}
	return props
}

func propertiesFromNamed(named []dto.Named) domain.PropertyList {
	props := make(domain.PropertyList, len(named))
	for i, n := range named {
		props[i] = domain.Property{Name: n.Name}
	}
	return props
}

func descriptions(desc []string) domain.StringList {
	if desc == nil {
		return domain.StringList{}
	}
	return domain.StringList(desc)
}

func effectsFromFlex(effects []dto.FlexEffect) domain.EffectList {
	out := make(domain.EffectList, len(effects))
	for i, e := range effects {
		out[i] = domain.Effect{EffectName: e.EffectName, EffectDescription: e.EffectDescription}
	}
	return out
}

func effectsFromOut(effects []dto.EffectOut) domain.EffectList {
	out := make(domain.EffectList, len(effects))
	for i, e := range effects {
		out[i] = domain.Effect{EffectName: e.EffectName, EffectDescription: e.EffectDescription}
	}
	return out
}
