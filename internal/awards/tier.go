package awards

// Tier represents the prestige level of an achievement.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// AllTiers returns all tiers in order from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the tier.
func (t Tier) Icon() string {
	switch t {
	case TierBronze:
		return "🥉"
	case TierSilver:
		return "🥈"
	case TierGold:
		return "🥇"
	case TierPlatinum:
		return "🏆"
	default:
		return "✦"
	}
}

// StreakTier returns the tier for a given answer-streak milestone.
func StreakTier(length int) Tier {
	switch {
	case length >= 25:
		return TierPlatinum
	case length >= 15:
		return TierGold
	case length >= 10:
		return TierSilver
	default:
		return TierBronze
	}
}
