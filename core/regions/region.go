// Package regions defines the closed set of regions the wizard supports and
// the localized content narrated for each of them.
package regions

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRegion   = errors.New("unknown region")
	ErrContentNotFound = errors.New("region content not found")
)

// Region identifies one of the supported states. The zero value is not a
// valid region.
type Region int

const (
	Delhi Region = iota + 1
	WestBengal
	TamilNadu

	regionEnd
)

// All returns every supported region in map order.
func All() []Region {
	return []Region{Delhi, WestBengal, TamilNadu}
}

func (r Region) Valid() bool { return r > 0 && r < regionEnd }

// ID is the stable identifier used in content files and logs.
func (r Region) ID() string {
	switch r {
	case Delhi:
		return "delhi"
	case WestBengal:
		return "west_bengal"
	case TamilNadu:
		return "tamil_nadu"
	}
	return ""
}

func (r Region) String() string {
	switch r {
	case Delhi:
		return "Delhi"
	case WestBengal:
		return "West Bengal"
	case TamilNadu:
		return "Tamil Nadu"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// Parse resolves either the display name or the ID of a region.
func Parse(s string) (Region, error) {
	for _, r := range All() {
		if s == r.ID() || s == r.String() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}
