package zodiac

// Tier is one of the ten zodiac rarity tiers, lowest first.
type Tier int

const (
	TierGarbage Tier = iota
	TierCommon
	TierUncommon
	TierRare
	TierEpic
	TierLegendary
	TierMythic
	TierGodly
	TierDivine
	TierImmortal

	TierCount = int(TierImmortal) + 1
)

var tierNames = [TierCount]string{
	"Garbage",
	"Common",
	"Uncommon",
	"Rare",
	"Epic",
	"Legendary",
	"Mythic",
	"Godly",
	"Divine",
	"Immortal",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= TierCount {
		return "Unknown"
	}
	return tierNames[t]
}

// AllTiers returns every tier in order from lowest to highest.
func AllTiers() []Tier {
	out := make([]Tier, TierCount)
	for i := range out {
		out[i] = Tier(i)
	}
	return out
}
