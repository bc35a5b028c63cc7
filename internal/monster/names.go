package monster

import "github.com/lawnchairsociety/lootforge/internal/zone"

// severityPrefixes escalate from "weak" to "ancient" as level rises.
var severityPrefixes = []string{"약한", "굶주린", "일반", "사나운", "광폭한", "피에 굶주린", "지옥의", "심연의", "타락한", "혼돈의", "전설적인", "고대의"}

// bossSuffix is appended to every boss name.
const bossSuffix = "군주"

var pools = map[zone.Kind][]string{
	zone.Forest:  {"슬라임", "늑대", "곰", "멧돼지", "나무정령", "거대 거미", "맨티스", "표범", "포레스트 골렘", "엘프 추방자"},
	zone.Mine:    {"박쥐", "코볼트", "두더지", "고블린 광부", "바위 골렘", "어둠의 정령", "동굴 트롤", "바실리스크", "지렁이 괴물"},
	zone.Lake:    {"멀록", "물정령", "거대 게", "사이렌", "크라켄 촉수", "물뱀", "거북이", "악어", "리자드맨"},
	zone.Ruins:   {"스켈레톤", "좀비", "유령", "가고일", "미믹", "흑마법사", "레이스", "데스나이트", "리치"},
	zone.Field:   {"고블린", "오크", "놀", "산적", "하이에나", "들개", "오우거", "사이클롭스", "그리폰"},
	zone.Dungeon: {"임프", "서큐버스", "인큐버스", "헬하운드", "데몬", "발록", "드래곤", "다크엘프", "키메라", "히드라"},
}

var defaultPool = []string{"슬라임", "고블린", "늑대", "오크"}

// Pool returns the creature names for a zone; zones without a pool of
// their own (Town, Unknown) use the fallback pool.
func Pool(z zone.Kind) []string {
	if p, ok := pools[z]; ok {
		return p
	}
	return defaultPool
}

// SeverityPrefix returns the flavor prefix for a level.
func SeverityPrefix(level int) string {
	return severityPrefixes[prefixIndex(level)]
}

// prefixIndex clamps floor(level/8) to the last prefix and then takes it
// modulo the prefix count. The modulo never fires after the clamp; it is
// kept so the index matches existing records exactly.
func prefixIndex(level int) int {
	n := len(severityPrefixes)
	return min(level/8, n-1) % n
}
