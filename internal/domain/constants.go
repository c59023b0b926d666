package domain

// Starter account values
const (
	StarterGold      = 1000
	StarterGems      = 10
	StarterEnergy    = 100
	StarterMaxEnergy = 100
)

// Gladiator creation values
const (
	GladiatorBaseHealth = 100
	GladiatorBaseSkill  = "basic_attack"
)

// Level-up thresholds and growth
const (
	GladiatorLevelExpStep = 100 // exp to next level = level * step
	PlayerLevelExpStep    = 500

	LevelUpStrengthGain  = 3
	LevelUpAgilityGain   = 2
	LevelUpEnduranceGain = 3
	LevelUpMaxHealthGain = 25
)

// Battle reward shaping
const (
	FameExpDivisor        = 5  // fame gained = exp / 5 on victory
	DefeatExpDivisor      = 3  // consolation gladiator exp = exp / 3
	DefeatPlayerDivisor   = 2  // player exp on defeat = exp / 2
	VictoryHealthRecovery = 10 // post-battle heal on victory
)

// Daily reward values
const (
	DailyRewardBaseGold    = 100
	DailyRewardStreakBonus = 20  // gold per streak day
	DailyRewardBonusCap    = 200 // streak bonus never exceeds this
	DailyRewardGemInterval = 7   // one gem per full week of streak
)

// Maintenance values
const (
	EnergyRestoreAmount  = 20
	ActiveWindowDays     = 7
)
