package loot

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/rng"
	"github.com/lawnchairsociety/lootforge/internal/stats"
	"github.com/lawnchairsociety/lootforge/internal/zone"
)

func TestSynthesize_ScriptedRolls(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		rolls     []float64
		wantName  string
		wantCat   items.Category
		wantRar   items.Rarity
		wantStats stats.Block
		wantValue int
	}{
		{
			name: "epic weapon with bear suffix",
			req:  Request{Tier: 10, Category: items.Weapon},
			// name 0 (검), epic, prefix 10, suffix drawn, suffix 1
			rolls:     []float64{0.0, 0.95, 0.0, 0.5, 0.0},
			wantName:  "수호의 검 곰의",
			wantCat:   items.Weapon,
			wantRar:   items.Epic,
			wantStats: stats.Block{Str: 30, Dex: 12, Vit: 13, Dodge: 2},
			wantValue: 600,
		},
		{
			name: "worn common armor without suffix",
			req:  Request{Tier: 1, Category: items.Armor},
			// name 0, common, worn roll hits, no suffix
			rolls:     []float64{0.0, 0.1, 0.1, 0.1},
			wantName:  "오래된 가죽 갑옷",
			wantCat:   items.Armor,
			wantRar:   items.Common,
			wantStats: stats.Block{Vit: 2},
			wantValue: 15,
		},
		{
			name:      "ordinary common helm",
			req:       Request{Tier: 10, Category: items.Helm},
			rolls:     []float64{0.0, 0.4, 0.5, 0.3},
			wantName:  "평범한 가죽 모자",
			wantCat:   items.Helm,
			wantRar:   items.Common,
			wantStats: stats.Block{Vit: 8, Int: 5},
			wantValue: 150,
		},
		{
			name: "forest bias picks gloves",
			req:  Request{Tier: 2, Zone: zone.Forest},
			// follow bias, bias index 1 (gloves), name 0, uncommon, prefix 3, no suffix
			rolls:     []float64{0.3, 0.3, 0.0, 0.5, 0.0, 0.2},
			wantName:  "날카로운 가죽 장갑",
			wantCat:   items.Gloves,
			wantRar:   items.Uncommon,
			wantStats: stats.Block{Str: 3, Dex: 2, Crit: 2},
			wantValue: 60,
		},
		{
			name: "town has no bias and falls to the global table",
			req:  Request{Tier: 10, Zone: zone.Town},
			// global roll 0.45 (helm), name 0, common, ordinary, no suffix
			rolls:     []float64{0.45, 0.0, 0.0, 0.9, 0.0},
			wantName:  "평범한 가죽 모자",
			wantCat:   items.Helm,
			wantRar:   items.Common,
			wantStats: stats.Block{Vit: 8, Int: 5},
			wantValue: 150,
		},
		{
			name: "ignored bias roll falls to the global table",
			req:  Request{Tier: 10, Zone: zone.Mine},
			// bias roll misses, global roll 0.95 (cloak), name 0, common, ordinary, no suffix
			rolls:     []float64{0.7, 0.95, 0.0, 0.0, 0.9, 0.0},
			wantName:  "평범한 낡은 망토",
			wantCat:   items.Cloak,
			wantRar:   items.Common,
			wantStats: stats.Block{Vit: 5, Luck: 5, Dodge: 1},
			wantValue: 150,
		},
		{
			name: "ring rolls its jewelry bonuses",
			req:  Request{Tier: 10, Category: items.Ring},
			// name 0, common, ordinary, no suffix, str yes, int no, dex yes, crit yes
			rolls:     []float64{0.0, 0.1, 0.5, 0.1, 0.6, 0.4, 0.6, 0.8},
			wantName:  "평범한 반지",
			wantCat:   items.Ring,
			wantRar:   items.Common,
			wantStats: stats.Block{Str: 8, Dex: 8, Luck: 5, Crit: 1},
			wantValue: 150,
		},
		{
			name: "mythic prefix folds mp into int",
			req:  Request{Tier: 1, Category: items.Weapon},
			// name 0, mythic, prefix 15 (마력의), no suffix
			rolls:     []float64{0.0, 0.995, 0.0, 0.0},
			wantName:  "마력의 검",
			wantCat:   items.Weapon,
			wantRar:   items.Mythic,
			wantStats: stats.Block{Str: 2, Dex: 1, Int: 25},
			wantValue: 90,
		},
		{
			name: "life suffix folds hp into vit",
			req:  Request{Tier: 10, Category: items.Armor},
			// name 0, common, ordinary, suffix drawn, suffix 9 (생명의)
			rolls:     []float64{0.0, 0.0, 0.5, 0.5, 0.7},
			wantName:  "평범한 가죽 갑옷 생명의",
			wantCat:   items.Armor,
			wantRar:   items.Common,
			wantStats: stats.Block{Vit: 45, Str: 2},
			wantValue: 150,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSynthesizer(rng.NewSequence(tc.rolls...), nil)
			item, err := s.Synthesize(tc.req)
			if err != nil {
				t.Fatalf("Synthesize returned error: %v", err)
			}
			if item.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", item.Name, tc.wantName)
			}
			if item.Category != tc.wantCat {
				t.Errorf("Category = %s, want %s", item.Category, tc.wantCat)
			}
			if item.Rarity != tc.wantRar {
				t.Errorf("Rarity = %s, want %s", item.Rarity, tc.wantRar)
			}
			if item.Stats != tc.wantStats {
				t.Errorf("Stats = %+v, want %+v", item.Stats, tc.wantStats)
			}
			if item.Value != tc.wantValue {
				t.Errorf("Value = %d, want %d", item.Value, tc.wantValue)
			}
			if item.Tier != tc.req.Tier {
				t.Errorf("Tier = %d, want %d", item.Tier, tc.req.Tier)
			}
			if want := items.Describe(tc.wantRar, tc.req.Tier, tc.wantCat); item.Description != want {
				t.Errorf("Description = %q, want %q", item.Description, want)
			}
		})
	}
}

func TestSynthesize_BiasMaterialBecomesOre(t *testing.T) {
	// follow bias, Forest index 3 (material)
	s := NewSynthesizer(rng.NewSequence(0.1, 0.9), nil)
	item, err := s.Synthesize(Request{Tier: 2, Zone: zone.Forest})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if item.Category != items.Material {
		t.Errorf("Category = %s, want material", item.Category)
	}
	if item.Name != "2등급 광석" {
		t.Errorf("Name = %q, want 2등급 광석", item.Name)
	}
	if item.Value != 10 {
		t.Errorf("Value = %d, want 10", item.Value)
	}
}

func TestSynthesize_ConsumableUsesDefaultPool(t *testing.T) {
	s := NewSynthesizer(rng.NewSequence(0.0, 0.0, 0.5, 0.0), nil)
	item, err := s.Synthesize(Request{Tier: 5, Category: items.Consumable})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if item.Category != items.Consumable {
		t.Errorf("Category = %s, want consumable", item.Category)
	}
	if item.Name != "평범한 가죽 갑옷" {
		t.Errorf("Name = %q, want the default pool name", item.Name)
	}
	if !item.Stats.IsZero() {
		t.Errorf("Stats = %+v, want none", item.Stats)
	}
}

func TestSynthesize_InvalidTier(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(1)), nil)
	for _, tier := range []int{0, -1, -100} {
		item, err := s.Synthesize(Request{Tier: tier})
		if !errors.Is(err, items.ErrInvalidArgument) {
			t.Errorf("Synthesize(tier=%d) error = %v, want ErrInvalidArgument", tier, err)
		}
		if item != nil {
			t.Errorf("Synthesize(tier=%d) returned an item", tier)
		}
	}
}

func TestSynthesize_ForcedCategoryAlwaysHonored(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(12345)), nil)
	for i := 0; i < 500; i++ {
		item, err := s.Synthesize(Request{Tier: 10, Category: items.Weapon, Zone: zone.Kinds[i%len(zone.Kinds)]})
		if err != nil {
			t.Fatalf("Synthesize returned error: %v", err)
		}
		if item.Category != items.Weapon {
			t.Fatalf("iteration %d: Category = %s, want weapon", i, item.Category)
		}
	}
}

func TestSynthesize_ValueFloor(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(777)), nil)
	for tier := 1; tier <= 60; tier++ {
		for i := 0; i < 20; i++ {
			item, err := s.Synthesize(Request{Tier: tier, Zone: zone.Dungeon})
			if err != nil {
				t.Fatalf("Synthesize returned error: %v", err)
			}
			if item.Value < tier*items.BaseValuePerTier && item.Category != items.Material {
				t.Errorf("tier %d: Value = %d, below %d", tier, item.Value, tier*items.BaseValuePerTier)
			}
			if item.Value <= 0 {
				t.Errorf("tier %d: Value = %d, want positive", tier, item.Value)
			}
		}
	}
}

func TestSynthesize_NeverRawHPOrMP(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(31337)), nil)
	for i := 0; i < 2000; i++ {
		item, err := s.Synthesize(Request{Tier: 1 + i%20})
		if err != nil {
			t.Fatalf("Synthesize returned error: %v", err)
		}
		if item.Stats.HP != 0 || item.Stats.MP != 0 {
			t.Fatalf("item %q carries raw hp/mp: %+v", item.Name, item.Stats)
		}
		if strings.HasSuffix(item.Name, " ") || strings.Contains(item.Name, "  ") {
			t.Fatalf("item name %q has stray whitespace", item.Name)
		}
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	a := NewSynthesizer(rng.NewLocked(2024), nil)
	b := NewSynthesizer(rng.NewLocked(2024), nil)

	for i := 0; i < 100; i++ {
		req := Request{Tier: 1 + i%15, Zone: zone.Kinds[i%len(zone.Kinds)]}
		x, err := a.Synthesize(req)
		if err != nil {
			t.Fatalf("Synthesize returned error: %v", err)
		}
		y, err := b.Synthesize(req)
		if err != nil {
			t.Fatalf("Synthesize returned error: %v", err)
		}
		if *x != *y {
			t.Fatalf("iteration %d differs:\n%+v\n%+v", i, *x, *y)
		}
	}
}

func TestSynthesize_UniqueIDs(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(5)), nil)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		item, err := s.Synthesize(Request{Tier: 3})
		if err != nil {
			t.Fatalf("Synthesize returned error: %v", err)
		}
		if seen[item.ID] {
			t.Fatalf("duplicate ID %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestBaseStats_TierTen(t *testing.T) {
	tests := []struct {
		category items.Category
		want     stats.Block
	}{
		{items.Weapon, stats.Block{Str: 25, Dex: 12}},
		{items.Helm, stats.Block{Vit: 8, Int: 5}},
		{items.Armor, stats.Block{Vit: 15, Str: 2}},
		{items.Gloves, stats.Block{Dex: 8, Str: 5, Crit: 1}},
		{items.Boots, stats.Block{Dex: 8, Luck: 3, Dodge: 1}},
		{items.Cloak, stats.Block{Vit: 5, Luck: 5, Dodge: 1}},
		{items.Consumable, stats.Block{}},
	}

	s := NewSynthesizer(rng.NewSequence(), nil)
	for _, tc := range tests {
		got := s.baseStats(tc.category, 10)
		if got != tc.want {
			t.Errorf("baseStats(%s, 10) = %+v, want %+v", tc.category, got, tc.want)
		}
	}
}

func TestBaseStats_TierOneNonNegative(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(9)), nil)
	for _, c := range items.Categories {
		for i := 0; i < 50; i++ {
			b := s.baseStats(c, 1)
			for _, st := range stats.All {
				if v := b.Get(st); v < 0 {
					t.Errorf("baseStats(%s, 1).%s = %d, want >= 0", c, st, v)
				}
			}
		}
	}
}

func TestSynthesizeMaterial(t *testing.T) {
	tests := []struct {
		tier      int
		kind      items.MaterialKind
		wantName  string
		wantValue int
	}{
		{3, items.Fish, "3등급 물고기", 15},
		{1, items.Mine, "1등급 광석", 5},
		{7, items.Wood, "7등급 통나무", 35},
	}

	s := NewSynthesizer(rand.New(rand.NewSource(1)), nil)
	for _, tc := range tests {
		item, err := s.SynthesizeMaterial(tc.tier, tc.kind)
		if err != nil {
			t.Fatalf("SynthesizeMaterial(%d, %s) returned error: %v", tc.tier, tc.kind, err)
		}
		if item.Name != tc.wantName {
			t.Errorf("Name = %q, want %q", item.Name, tc.wantName)
		}
		if item.Value != tc.wantValue {
			t.Errorf("Value = %d, want %d", item.Value, tc.wantValue)
		}
		if item.Rarity != items.Common {
			t.Errorf("Rarity = %s, want common", item.Rarity)
		}
		if item.Category != items.Material {
			t.Errorf("Category = %s, want material", item.Category)
		}
		if !item.Stats.IsZero() {
			t.Errorf("Stats = %+v, want empty", item.Stats)
		}
		if !strings.HasPrefix(item.ID, "mat_") {
			t.Errorf("ID = %q, want mat_ prefix", item.ID)
		}
	}

	if _, err := s.SynthesizeMaterial(0, items.Fish); !errors.Is(err, items.ErrInvalidArgument) {
		t.Errorf("SynthesizeMaterial(0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestRollCategory(t *testing.T) {
	tests := []struct {
		roll float64
		want items.Category
	}{
		{0.0, items.Weapon},
		{0.2499, items.Weapon},
		{0.25, items.Armor},
		{0.40, items.Helm},
		{0.50, items.Gloves},
		{0.60, items.Boots},
		{0.70, items.Ring},
		{0.80, items.Accessory},
		{0.90, items.Cloak},
		{0.9999, items.Cloak},
	}

	for _, tc := range tests {
		if got := RollCategory(tc.roll); got != tc.want {
			t.Errorf("RollCategory(%v) = %s, want %s", tc.roll, got, tc.want)
		}
	}
}

func TestDefaultBias_Clone(t *testing.T) {
	b := DefaultBias()
	c := b.Clone()
	c[zone.Forest][0] = items.Ring
	if b[zone.Forest][0] != items.Boots {
		t.Error("Clone shares backing arrays with its source")
	}
	if len(b[zone.Town]) != 0 {
		t.Error("Town should have no preference")
	}
}

func TestNewSynthesizer_CopiesBias(t *testing.T) {
	bias := Bias{zone.Town: {items.Ring}}
	s := NewSynthesizer(rng.NewSequence(0.0, 0.5, 0.95, 0.5), bias)
	bias[zone.Town][0] = items.Weapon
	bias[zone.Forest] = []items.Category{items.Boots}

	item, err := s.Synthesize(Request{Tier: 1, Zone: zone.Town})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if item.Category != items.Ring {
		t.Errorf("Category = %s, want ring from the bias given at construction", item.Category)
	}
	if _, ok := s.bias[zone.Forest]; ok {
		t.Error("zone added to the caller's map after construction leaked into the synthesizer")
	}
}

func TestSynthesize_RecordsAffixKeys(t *testing.T) {
	s := NewSynthesizer(rng.NewSequence(0.0, 0.95, 0.0, 0.5, 0.0), nil)
	item, err := s.Synthesize(Request{Tier: 10, Category: items.Weapon})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if item.Prefix != "수호의" || item.Suffix != "of Bear" {
		t.Errorf("affixes = %q / %q, want 수호의 / of Bear", item.Prefix, item.Suffix)
	}

	s = NewSynthesizer(rng.NewSequence(0.0, 0.1, 0.1, 0.1), nil)
	item, err = s.Synthesize(Request{Tier: 1, Category: items.Armor})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if item.Prefix != "오래된" || item.Suffix != "" {
		t.Errorf("affixes = %q / %q, want 오래된 / none", item.Prefix, item.Suffix)
	}
}
