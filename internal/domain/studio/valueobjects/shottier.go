package valueobjects

import "fmt"

// ShotTier is the requested output size class. The number of shots (and
// credits) each tier costs comes from configuration, not from this type.
type ShotTier string

const (
	TierBasic    ShotTier = "basic"
	TierStandard ShotTier = "standard"
	TierPremium  ShotTier = "premium"
)

// NewShotTier validates a tier identifier.
func NewShotTier(s string) (ShotTier, error) {
	t := ShotTier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid shot tier: %s", s)
	}
	return t, nil
}

func (t ShotTier) IsValid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return true
	}
	return false
}

func (t ShotTier) String() string {
	return string(t)
}
