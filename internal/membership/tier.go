package membership

import (
	"errors"
	"fmt"
)

type Tier string

const (
	TierCreator      Tier = "creator"
	TierProfessional Tier = "professional"
	TierExecutive    Tier = "executive"
)

// SlotHours is the cost of a single booking against the monthly allocation.
const SlotHours = 2

var ErrUnknownTier = errors.New("unknown membership tier")

// MonthlyHours returns the studio-hour allocation for the tier.
func (t Tier) MonthlyHours() int {
	switch t {
	case TierCreator:
		return 10
	case TierProfessional:
		return 15
	case TierExecutive:
		return 20
	default:
		return 0
	}
}

func (t Tier) Valid() bool {
	switch t {
	case TierCreator, TierProfessional, TierExecutive:
		return true
	}
	return false
}

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}
