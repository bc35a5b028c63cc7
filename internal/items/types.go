package items

import "strings"

// Category is the closed set of item categories. Free-form strings are
// resolved with ParseCategory before they reach a synthesizer.
type Category int

const (
	CategoryNone Category = iota // not forced; let the synthesizer choose
	Weapon
	Helm
	Armor
	Gloves
	Boots
	Cloak
	Accessory
	Ring
	Material
	Consumable
)

// Categories lists every concrete category.
var Categories = []Category{Weapon, Helm, Armor, Gloves, Boots, Cloak, Accessory, Ring, Material, Consumable}

// String returns the key used in config files
func (c Category) String() string {
	switch c {
	case Weapon:
		return "weapon"
	case Helm:
		return "helm"
	case Armor:
		return "armor"
	case Gloves:
		return "gloves"
	case Boots:
		return "boots"
	case Cloak:
		return "cloak"
	case Accessory:
		return "accessory"
	case Ring:
		return "ring"
	case Material:
		return "material"
	case Consumable:
		return "consumable"
	default:
		return "none"
	}
}

// Label returns the in-game display name
func (c Category) Label() string {
	switch c {
	case Weapon:
		return "무기"
	case Helm:
		return "투구"
	case Armor:
		return "갑옷"
	case Gloves:
		return "장갑"
	case Boots:
		return "신발"
	case Cloak:
		return "망토"
	case Accessory:
		return "장신구"
	case Ring:
		return "반지"
	case Material:
		return "재료"
	case Consumable:
		return "소비"
	default:
		return ""
	}
}

// ParseCategory converts a config key or display label to a Category
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) || s == c.Label() {
			return c, true
		}
	}
	return CategoryNone, false
}

// MarshalText encodes the category by its key.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a key or label; unknown text becomes CategoryNone.
func (c *Category) UnmarshalText(text []byte) error {
	*c, _ = ParseCategory(string(text))
	return nil
}

// MaterialKind selects the label set for gathered materials.
type MaterialKind int

const (
	Mine MaterialKind = iota
	Wood
	Fish
)

// String returns the key used on the command line
func (k MaterialKind) String() string {
	switch k {
	case Mine:
		return "mine"
	case Wood:
		return "wood"
	case Fish:
		return "fish"
	default:
		return "unknown"
	}
}

// Label returns the display noun for the material kind
func (k MaterialKind) Label() string {
	switch k {
	case Mine:
		return "광석"
	case Wood:
		return "통나무"
	case Fish:
		return "물고기"
	default:
		return ""
	}
}

// ParseMaterialKind converts a key to a MaterialKind
func ParseMaterialKind(s string) (MaterialKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mine":
		return Mine, true
	case "wood":
		return Wood, true
	case "fish":
		return Fish, true
	default:
		return Mine, false
	}
}
