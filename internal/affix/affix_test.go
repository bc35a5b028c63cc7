package affix

import (
	"testing"

	"github.com/lawnchairsociety/lootforge/internal/items"
)

func TestPrefixRanges(t *testing.T) {
	tests := []struct {
		rarity      items.Rarity
		first, last int
	}{
		{items.Common, 1, 2},
		{items.Uncommon, 3, 6},
		{items.Rare, 7, 9},
		{items.Epic, 10, 12},
		{items.Legendary, 13, 14},
		{items.Mythic, 15, 16},
	}

	for _, tc := range tests {
		first, last := PrefixRange(tc.rarity)
		if first != tc.first || last != tc.last {
			t.Errorf("PrefixRange(%s) = %d-%d, want %d-%d", tc.rarity, first, last, tc.first, tc.last)
		}
		if last >= PrefixCount() {
			t.Errorf("PrefixRange(%s) runs past the table (%d entries)", tc.rarity, PrefixCount())
		}
	}
}

func TestListPrefixesForRarity_NonEmpty(t *testing.T) {
	for _, r := range items.Rarities {
		list := ListPrefixesForRarity(r)
		if len(list) == 0 {
			t.Errorf("ListPrefixesForRarity(%s) is empty", r)
		}
	}
	if got := len(ListPrefixesForRarity(items.Uncommon)); got != 4 {
		t.Errorf("Uncommon pool size = %d, want 4", got)
	}
}

func TestListPrefixesForRarity_FloorNeverAboveDraw(t *testing.T) {
	for _, r := range items.Rarities {
		for _, a := range ListPrefixesForRarity(r) {
			if a.RarityFloor > r {
				t.Errorf("prefix %q has floor %s but is drawn at %s", a.Name, a.RarityFloor, r)
			}
		}
	}
}

func TestListPrefixesForRarity_ReturnsCopy(t *testing.T) {
	list := ListPrefixesForRarity(items.Rare)
	list[0].Name = "tampered"
	if Prefix(7).Name == "tampered" {
		t.Error("ListPrefixesForRarity exposed the backing table")
	}
}

func TestFixedPrefixes(t *testing.T) {
	if got := Prefix(Ordinary); got.Name != "평범한" || !got.Stats.IsZero() {
		t.Errorf("ordinary prefix = %+v", got)
	}
	if got := Prefix(Worn); got.Name != "오래된" || got.Stats.Vit != 1 {
		t.Errorf("worn prefix = %+v", got)
	}
	if got := Prefix(15); got.Name != "마력의" || got.Stats.MP != 50 {
		t.Errorf("prefix 15 = %+v", got)
	}
}

func TestListAllSuffixes(t *testing.T) {
	list := ListAllSuffixes()
	if len(list) != SuffixCount() {
		t.Fatalf("len = %d, want %d", len(list), SuffixCount())
	}
	if list[0].Label() != "" || !list[0].Stats.IsZero() {
		t.Errorf("suffix 0 should be the no-op entry, got %+v", list[0])
	}
	for i, s := range list[1:] {
		if s.Label() == "" {
			t.Errorf("suffix %d has no display name", i+1)
		}
	}

	list[1].DisplayName = "tampered"
	if Suffix(1).DisplayName == "tampered" {
		t.Error("ListAllSuffixes exposed the backing table")
	}
}

func TestLabel(t *testing.T) {
	if got := Suffix(1).Label(); got != "곰의" {
		t.Errorf("Suffix(1).Label() = %q, want 곰의", got)
	}
	if got := Prefix(3).Label(); got != "날카로운" {
		t.Errorf("Prefix(3).Label() = %q, want 날카로운", got)
	}
}
