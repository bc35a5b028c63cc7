package loot

import "github.com/lawnchairsociety/lootforge/internal/items"

var (
	weaponNames    = []string{"검", "도끼", "창", "단검", "지팡이", "활", "둔기", "양손검", "마법봉", "석궁"}
	helmNames      = []string{"가죽 모자", "철 투구", "사슬 두건", "판금 헬멧", "마법사의 모자", "써클릿", "후드", "왕관"}
	armorNames     = []string{"가죽 갑옷", "사슬 갑옷", "판금 갑옷", "로브", "튜닉", "흉갑", "미늘 갑옷"}
	glovesNames    = []string{"가죽 장갑", "철 건틀릿", "비단 장갑", "손목 보호대", "판금 장갑"}
	bootsNames     = []string{"가죽 부츠", "철 그리브", "비단 신발", "전투화", "샌들"}
	cloakNames     = []string{"낡은 망토", "여행자의 망토", "비단 망토", "털 망토", "그림자 망토", "왕의 망토"}
	accessoryNames = []string{"목걸이", "부적", "펜던트", "귀걸이", "브로치", "성물"}
	ringNames      = []string{"반지", "가락지", "인장", "보석 반지"}
)

// namePool returns the base names for a category. Categories without their
// own pool draw from the armor names.
func namePool(c items.Category) []string {
	switch c {
	case items.Weapon:
		return weaponNames
	case items.Helm:
		return helmNames
	case items.Armor:
		return armorNames
	case items.Gloves:
		return glovesNames
	case items.Boots:
		return bootsNames
	case items.Cloak:
		return cloakNames
	case items.Accessory:
		return accessoryNames
	case items.Ring:
		return ringNames
	default:
		return armorNames
	}
}
