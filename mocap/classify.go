package mocap

import "sort"

// IsForceChannel reports whether the 1-based analog channel appears in the
// channel list of any force platform. Channel 0 is the unmapped sentinel
// and is never a force channel. A channel listed by several platforms is a
// force channel regardless of which one claims it.
func IsForceChannel(s *Session, channel int) bool {
	if channel == 0 {
		return false
	}
	for _, p := range s.Platforms {
		for _, c := range p.Channels {
			if c == channel {
				return true
			}
		}
	}
	return false
}

// ForceChannels returns the distinct 1-based channels claimed by any
// platform, in ascending order.
func ForceChannels(s *Session) []int {
	seen := make(map[int]struct{})
	for _, p := range s.Platforms {
		for _, c := range p.Channels {
			if c != 0 {
				seen[c] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}
