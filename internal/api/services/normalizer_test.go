package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armory/internal/api/dto"
	"armory/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestNormalizeCatalogItem(t *testing.T) {
	t.Run("missing name rejected", func(t *testing.T) {
		_, err := NormalizeCatalogItem(&dto.CatalogItem{Name: "   "})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("full catalog payload", func(t *testing.T) {
		var item dto.CatalogItem
		data := []byte(`{
			"index": "longsword",
			"name": "Longsword",
			"category_range": "Martial Melee",
			"equipment_category": {"name": "Weapon"},
			"damage": {"damage_dice": "1d8", "damage_type": {"name": "Slashing"}},
			"two_handed_damage": {"damage_dice": "1d10", "damage_type": {"name": "Slashing"}},
			"range": {"normal": 5},
			"properties": [{"name": "Versatile"}],
			"weight": 3,
			"cost": {"quantity": 15, "unit": "gp"}
		}`)
		require.NoError(t, json.Unmarshal(data, &item))

		eq, err := NormalizeCatalogItem(&item)
		require.NoError(t, err)

		assert.Equal(t, "Longsword", eq.Name)
		assert.Equal(t, "Martial Melee", eq.CategoryRange)
		assert.Equal(t, "Weapon", eq.EquipmentCategoryName)
		assert.Equal(t, "1d8", eq.Damage.DiceExpression)
		assert.Equal(t, "Slashing", eq.Damage.DamageTypeName)
		assert.Equal(t, "1d10", eq.TwoHandedDamage.DiceExpression)
		require.NotNil(t, eq.Range.Normal)
		assert.Equal(t, 5, *eq.Range.Normal)
		assert.Nil(t, eq.Range.Long)
		require.Len(t, eq.Properties, 1)
		assert.Equal(t, "Versatile", eq.Properties[0].Name)
		require.NotNil(t, eq.Cost.Quantity)
		assert.Equal(t, 15.0, *eq.Cost.Quantity)
		assert.Equal(t, "gp", eq.Cost.Unit)
		assert.NotNil(t, eq.Descriptions)
		assert.Empty(t, eq.Descriptions)
	})

	t.Run("bare damage string with sibling damageType", func(t *testing.T) {
		var item dto.CatalogItem
		data := []byte(`{"name": "Club", "damage": "1d4", "damageType": "Bludgeoning"}`)
		require.NoError(t, json.Unmarshal(data, &item))

		eq, err := NormalizeCatalogItem(&item)
		require.NoError(t, err)
		assert.Equal(t, "1d4", eq.Damage.DiceExpression)
		assert.Equal(t, "Bludgeoning", eq.Damage.DamageTypeName)
	})

	t.Run("legacy category field fills both names", func(t *testing.T) {
		var item dto.CatalogItem
		data := []byte(`{"name": "Old Blade", "equipmentCategory": "Weapon"}`)
		require.NoError(t, json.Unmarshal(data, &item))

		eq, err := NormalizeCatalogItem(&item)
		require.NoError(t, err)
		assert.Equal(t, "Weapon", eq.CategoryRange)
		assert.Equal(t, "Weapon", eq.EquipmentCategoryName)
	})

	t.Run("legacy range string becomes normal only", func(t *testing.T) {
		var item dto.CatalogItem
		data := []byte(`{"name": "Whip", "range": "Normal: 30"}`)
		require.NoError(t, json.Unmarshal(data, &item))

		eq, err := NormalizeCatalogItem(&item)
		require.NoError(t, err)
		require.NotNil(t, eq.Range.Normal)
		assert.Equal(t, 30, *eq.Range.Normal)
		assert.Nil(t, eq.Range.Long)
	})

	t.Run("unparseable range string reads as absent", func(t *testing.T) {
		var item dto.CatalogItem
		data := []byte(`{"name": "Whip", "range": "Melee"}`)
		require.NoError(t, json.Unmarshal(data, &item))

		eq, err := NormalizeCatalogItem(&item)
		require.NoError(t, err)
		assert.Nil(t, eq.Range.Normal)
		assert.Nil(t, eq.Range.Long)
	})

	t.Run("catalog effect shape mapped to canonical names", func(t *testing.T) {
		var item dto.CatalogItem
		data := []byte(`{
			"name": "Flame Tongue",
			"magical": true,
			"requires_attunement": true,
			"effects": [{"name": "Ignite", "description": "Bursts into flame."}]
		}`)
		require.NoError(t, json.Unmarshal(data, &item))

		eq, err := NormalizeCatalogItem(&item)
		require.NoError(t, err)
		assert.True(t, eq.Magical)
		assert.True(t, eq.RequiresAttunement)
		require.Len(t, eq.Effects, 1)
		assert.Equal(t, "Ignite", eq.Effects[0].EffectName)
		assert.Equal(t, "Bursts into flame.", eq.Effects[0].EffectDescription)
	})
}

// A stored record serialized back through the wire format and normalized
// again must land on the same canonical values.
func TestNormalizeCatalogItem_RoundTrip(t *testing.T) {
	eq := &domain.Equipment{
		CustomID:              "longsword",
		Name:                  "Longsword",
		CategoryRange:         "Martial Melee",
		EquipmentCategoryName: "Weapon",
		Damage:                domain.Damage{DiceExpression: "1d8", DamageTypeName: "Slashing"},
		Range:                 domain.Range{Normal: intPtr(5)},
		Properties:            domain.PropertyList{{Name: "Versatile"}},
		Weight:                floatPtr(3),
		Cost:                  domain.Cost{Quantity: floatPtr(15), Unit: "gp"},
		Descriptions:          domain.StringList{"A classic blade."},
		Effects:               domain.EffectList{{EffectName: "None", EffectDescription: ""}},
	}

	wire, err := json.Marshal(dto.EquipmentFromDomain(eq))
	require.NoError(t, err)

	var item dto.CatalogItem
	require.NoError(t, json.Unmarshal(wire, &item))

	again, err := NormalizeCatalogItem(&item)
	require.NoError(t, err)

	assert.Equal(t, eq.Name, again.Name)
	assert.Equal(t, eq.CategoryRange, again.CategoryRange)
	assert.Equal(t, eq.EquipmentCategoryName, again.EquipmentCategoryName)
	assert.Equal(t, eq.Damage, again.Damage)
	assert.Equal(t, eq.Range, again.Range)
	assert.Equal(t, eq.Properties, again.Properties)
	assert.Equal(t, eq.Weight, again.Weight)
	assert.Equal(t, eq.Cost, again.Cost)
	assert.Equal(t, eq.Descriptions, again.Descriptions)
	assert.Equal(t, eq.Effects, again.Effects)
}

func TestNormalizeForm(t *testing.T) {
	t.Run("missing name rejected", func(t *testing.T) {
		_, err := NormalizeForm(&dto.EquipmentForm{})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("minimal form gets empty defaults", func(t *testing.T) {
		eq, err := NormalizeForm(&dto.EquipmentForm{Name: "Torch"})
		require.NoError(t, err)

		assert.Equal(t, "Torch", eq.Name)
		assert.Equal(t, domain.Damage{}, eq.Damage)
		assert.Equal(t, domain.Range{}, eq.Range)
		assert.Equal(t, domain.Cost{}, eq.Cost)
		assert.NotNil(t, eq.Descriptions)
		assert.Empty(t, eq.Properties)
		assert.Empty(t, eq.Effects)
	})

	t.Run("nested values carried over", func(t *testing.T) {
		form := &dto.EquipmentForm{
			Name:   "Handaxe",
			Damage: &dto.DamageIn{DamageDice: "1d6", DamageType: dto.Named{Name: "Slashing"}},
			ThrowRange: &dto.RangeOut{Normal: intPtr(20), Long: intPtr(60)},
			Properties: []dto.Named{{Name: "Light"}, {Name: "Thrown"}},
			Cost:       &dto.CostIn{Quantity: floatPtr(5), Unit: "gp"},
		}

		eq, err := NormalizeForm(form)
		require.NoError(t, err)
		assert.Equal(t, "1d6", eq.Damage.DiceExpression)
		assert.Equal(t, "Slashing", eq.Damage.DamageTypeName)
		require.NotNil(t, eq.ThrowRange.Normal)
		assert.Equal(t, 20, *eq.ThrowRange.Normal)
		assert.Equal(t, 60, *eq.ThrowRange.Long)
		require.Len(t, eq.Properties, 2)
		assert.Equal(t, "gp", eq.Cost.Unit)
	})
}

func TestApplyPatch(t *testing.T) {
	base := func() *domain.Equipment {
		return &domain.Equipment{
			Name:          "Longsword",
			CategoryRange: "Martial Melee",
			Damage:        domain.Damage{DiceExpression: "1d8", DamageTypeName: "Slashing"},
			Weight:        floatPtr(3),
			Cost:          domain.Cost{Quantity: floatPtr(15), Unit: "gp"},
			Descriptions:  domain.StringList{"A classic blade."},
		}
	}

	t.Run("missing name rejected", func(t *testing.T) {
		eq := base()
		err := ApplyPatch(eq, &dto.EquipmentPatch{})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		eq := base()
		err := ApplyPatch(eq, &dto.EquipmentPatch{Name: strPtr("  ")})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("absent fields untouched", func(t *testing.T) {
		eq := base()
		err := ApplyPatch(eq, &dto.EquipmentPatch{Name: strPtr("Longsword +1")})
		require.NoError(t, err)

		assert.Equal(t, "Longsword +1", eq.Name)
		assert.Equal(t, "Martial Melee", eq.CategoryRange)
		assert.Equal(t, "1d8", eq.Damage.DiceExpression)
		assert.Equal(t, domain.StringList{"A classic blade."}, eq.Descriptions)
	})

	t.Run("present fields overwritten", func(t *testing.T) {
		eq := base()
		err := ApplyPatch(eq, &dto.EquipmentPatch{
			Name:    strPtr("Longsword +1"),
			Magical: boolPtr(true),
			Rarity:  &dto.Named{Name: "Rare"},
			Damage:  &dto.DamageIn{DamageDice: "1d8+1", DamageType: dto.Named{Name: "Slashing"}},
		})
		require.NoError(t, err)

		assert.True(t, eq.Magical)
		assert.Equal(t, "Rare", eq.RarityName)
		assert.Equal(t, "1d8+1", eq.Damage.DiceExpression)
	})

	t.Run("empty cost object leaves stored cost alone", func(t *testing.T) {
		eq := base()
		err := ApplyPatch(eq, &dto.EquipmentPatch{
			Name: strPtr("Longsword"),
			Cost: &dto.CostIn{},
		})
		require.NoError(t, err)

		require.NotNil(t, eq.Cost.Quantity)
		assert.Equal(t, 15.0, *eq.Cost.Quantity)
		assert.Equal(t, "gp", eq.Cost.Unit)
	})

	t.Run("cost with values replaces stored cost", func(t *testing.T) {
		eq := base()
		err := ApplyPatch(eq, &dto.EquipmentPatch{
			Name: strPtr("Longsword"),
			Cost: &dto.CostIn{Quantity: floatPtr(50), Unit: "gp"},
		})
		require.NoError(t, err)

		require.NotNil(t, eq.Cost.Quantity)
		assert.Equal(t, 50.0, *eq.Cost.Quantity)
	})
}
