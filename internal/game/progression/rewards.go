package progression

// LevelUpReward is granted once when a level is reached.
type LevelUpReward struct {
	Level    int
	Coins    int
	Feathers int
	// Unlock is an optional cosmetic unlock id granted at milestone levels.
	Unlock string
}

// PrestigeReward records the permanent multipliers earned by a prestige
// reset. Multipliers apply to all future XP/coin gains, never retroactively.
type PrestigeReward struct {
	PrestigeLevel  int
	XPMultiplier   float64
	CoinMultiplier float64
}

// RewardTable maps levels to level-up rewards: a sparse milestone map with a
// fallback rule for everything else.
type RewardTable struct {
	milestones map[int]LevelUpReward
}

// NewRewardTable builds a table from explicit milestone entries.
func NewRewardTable(milestones []LevelUpReward) RewardTable {
	m := make(map[int]LevelUpReward, len(milestones))
	for _, r := range milestones {
		m[r.Level] = r
	}
	return RewardTable{milestones: m}
}

// DefaultRewardTable returns the shipped milestone set: cosmetic unlocks
// every ten levels, with the fallback rule covering the rest.
func DefaultRewardTable() RewardTable {
	return NewRewardTable([]LevelUpReward{
		{Level: 10, Coins: 500, Feathers: 2, Unlock: "skin_golden_pigeon"},
		{Level: 20, Coins: 1000, Feathers: 4, Unlock: "skin_neon_hummingbird"},
		{Level: 30, Coins: 2000, Feathers: 6, Unlock: "skin_obsidian_crow"},
		{Level: 40, Coins: 4000, Feathers: 8, Unlock: "skin_royal_eagle"},
		{Level: 50, Coins: 10000, Feathers: 20, Unlock: "skin_celestial_owl"},
	})
}

// RewardFor returns the reward for reaching level. Milestone levels use their
// explicit entry; other multiples of five grant level/5 feathers plus scaled
// coins; every remaining level grants scaled coins only.
//
// Precondition: level >= 2.
// Postcondition: Returns a reward with Level == level and Coins >= 1.
func (t RewardTable) RewardFor(level int) LevelUpReward {
	if r, ok := t.milestones[level]; ok {
		r.Level = level
		return r
	}
	r := LevelUpReward{Level: level, Coins: 25 * level}
	if level%5 == 0 {
		r.Feathers = level / 5
	}
	return r
}
