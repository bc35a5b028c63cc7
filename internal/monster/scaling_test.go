package monster

import "testing"

func TestMaxHealth(t *testing.T) {
	tests := []struct {
		level  int
		isBoss bool
		want   int
	}{
		{1, false, 67},   // 60 * 1.12 = 67.2
		{1, true, 1344},  // 67.2 * 20, floored once
		{8, false, 117},  // 117.6
		{8, true, 2352},
		{10, false, 132},
		{10, true, 2640},
		{99, false, 772},
		{100, false, 780},
	}

	for _, tc := range tests {
		got := MaxHealth(tc.level, tc.isBoss)
		if got != tc.want {
			t.Errorf("MaxHealth(%d, %v) = %d, want %d", tc.level, tc.isBoss, got, tc.want)
		}
	}
}

func TestAttackPower(t *testing.T) {
	tests := []struct {
		level  int
		isBoss bool
		want   int
	}{
		{1, false, 8},  // 8.96
		{1, true, 26},  // 26.88
		{2, false, 9},
		{2, true, 29},
		{10, false, 17},
		{10, true, 52},
		{100, true, 312},
	}

	for _, tc := range tests {
		got := AttackPower(tc.level, tc.isBoss)
		if got != tc.want {
			t.Errorf("AttackPower(%d, %v) = %d, want %d", tc.level, tc.isBoss, got, tc.want)
		}
	}
}

func TestExperienceReward(t *testing.T) {
	tests := []struct {
		level  int
		isBoss bool
		want   int
	}{
		{1, false, 18},
		{1, true, 180},
		{10, false, 180},
		{10, true, 1800},
	}

	for _, tc := range tests {
		got := ExperienceReward(tc.level, tc.isBoss)
		if got != tc.want {
			t.Errorf("ExperienceReward(%d, %v) = %d, want %d", tc.level, tc.isBoss, got, tc.want)
		}
	}
}

func TestBossAlwaysStronger(t *testing.T) {
	for level := 1; level <= 500; level++ {
		hp, bossHP := MaxHealth(level, false), MaxHealth(level, true)
		if bossHP < BossHealthMultiplier*hp {
			t.Errorf("level %d: boss hp %d < 20 * %d", level, bossHP, hp)
		}
		atk, bossAtk := AttackPower(level, false), AttackPower(level, true)
		if bossAtk < BossAttackMultiplier*atk || bossAtk <= atk {
			t.Errorf("level %d: boss attack %d not above 3 * %d", level, bossAtk, atk)
		}
	}
}

func TestPrefixIndex(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{1, 0},
		{7, 0},
		{8, 1},
		{15, 1},
		{16, 2},
		{87, 10},
		{88, 11},
		{95, 11},
		{100, 11},
		{10000, 11}, // saturates, never wraps
	}

	for _, tc := range tests {
		got := prefixIndex(tc.level)
		if got != tc.want {
			t.Errorf("prefixIndex(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestSeverityPrefix(t *testing.T) {
	if got := SeverityPrefix(8); got != "굶주린" {
		t.Errorf("SeverityPrefix(8) = %q, want 굶주린", got)
	}
	if got := SeverityPrefix(100); got != "고대의" {
		t.Errorf("SeverityPrefix(100) = %q, want 고대의", got)
	}
	if len(severityPrefixes) != 12 {
		t.Errorf("expected 12 severity prefixes, got %d", len(severityPrefixes))
	}
}
