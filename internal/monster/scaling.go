package monster

// Scaling contains the level curves for generated monsters

const (
	levelGrowth = 0.12 // per-level growth of base health and attack

	baseHealth = 60
	baseAttack = 8
	expPerLvl  = 18

	BossHealthMultiplier = 20
	BossAttackMultiplier = 3
	BossExpMultiplier    = 10
)

// Scale applies the level curve to a base stat.
// Formula: base * (1 + level * 0.12)
func Scale(base float64, level int) float64 {
	// explicit conversion keeps the multiply-add from being fused
	growth := 1 + float64(float64(level)*levelGrowth)
	return base * growth
}

// MaxHealth calculates the health of a monster at the given level.
// Formula: floor(scale(60) * (boss ? 20 : 1))
func MaxHealth(level int, isBoss bool) int {
	mult := 1
	if isBoss {
		mult = BossHealthMultiplier
	}
	return int(Scale(baseHealth, level) * float64(mult))
}

// AttackPower calculates the damage of a monster at the given level.
// Formula: floor(scale(8) * (boss ? 3 : 1))
func AttackPower(level int, isBoss bool) int {
	mult := 1
	if isBoss {
		mult = BossAttackMultiplier
	}
	return int(Scale(baseAttack, level) * float64(mult))
}

// ExperienceReward calculates the XP granted for a kill.
// Formula: level * 18 * (boss ? 10 : 1)
func ExperienceReward(level int, isBoss bool) int {
	mult := 1
	if isBoss {
		mult = BossExpMultiplier
	}
	return level * expPerLvl * mult
}
