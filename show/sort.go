package show

import (
	"time"

	"golang.org/x/exp/slices"
)

// Tiers of the display order.
const (
	TierUpcoming = iota // next release has a date
	TierAired           // only the previous release has a date
	TierUnknown         // everything else, input order kept
)

// Key is the ranking key of a show.
type Key struct {
	Tier int
	At   time.Time
}

// KeyOf computes the ranking key of s.
func KeyOf(s *Show) Key {
	if s.Err == nil {
		if at, ok := s.Next.AirDate().Get(); ok {
			return Key{Tier: TierUpcoming, At: at}
		}
		if at, ok := s.Previous.AirDate().Get(); ok {
			return Key{Tier: TierAired, At: at}
		}
	}
	return Key{Tier: TierUnknown}
}

// Compare orders keys by tier, then upcoming shows soonest first and aired
// shows most recent first. Keys in TierUnknown are equal.
func (k Key) Compare(other Key) int {
	if k.Tier != other.Tier {
		if k.Tier < other.Tier {
			return -1
		}
		return 1
	}

	switch k.Tier {
	case TierUpcoming:
		return k.At.Compare(other.At)
	case TierAired:
		return other.At.Compare(k.At)
	default:
		return 0
	}
}

// Sort orders shows in place for display. The sort is stable.
func Sort(shows []*Show) {
	keys := make(map[*Show]Key, len(shows))
	for _, s := range shows {
		keys[s] = KeyOf(s)
	}

	slices.SortStableFunc(shows, func(a, b *Show) int {
		return keys[a].Compare(keys[b])
	})
}
