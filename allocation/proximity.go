package allocation

// ProximityThreshold is the fraction of an optimum the current choice must
// reach to count as near it.
const ProximityThreshold = 0.95

// Proximity is the guidance category for the current choice.
type Proximity uint8

const (
	Balanced Proximity = iota
	NearHappiness
	NearWood
	NearApples
)

func (p Proximity) String() string {
	switch p {
	case NearHappiness:
		return "near-optimal happiness"
	case NearWood:
		return "near-optimal wood"
	case NearApples:
		return "near-optimal apples"
	}
	return "balanced / unoptimized"
}

// Advice returns the guidance sentence shown to the player.
func (p Proximity) Advice() string {
	switch p {
	case NearHappiness:
		return "You are close to maximising happiness!"
	case NearWood:
		return "You are close to maximising wood!"
	case NearApples:
		return "You are close to maximising apples!"
	}
	return "Your mix is balanced; adjust the daily choice to optimise one criterion."
}

// ClassifyProximity picks the first matching category in priority order:
// happiness, wood, apples, then balanced.
func ClassifyProximity(current Allocation, currentUtility float64, o Optima) Proximity {
	if currentUtility >= o.Happiness.Utility*ProximityThreshold {
		return NearHappiness
	}
	if float64(current.Trees) >= float64(o.Wood.Allocation.Trees)*ProximityThreshold {
		return NearWood
	}
	if float64(current.Apples) >= float64(o.Apples.Allocation.Apples)*ProximityThreshold {
		return NearApples
	}
	return Balanced
}
