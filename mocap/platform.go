package mocap

// MaxPlatformChannels is the largest number of analog channels a single
// force platform may reference.
const MaxPlatformChannels = 8

// ForcePlatform describes one force plate. Channels lists the 1-based
// analog channels carrying the plate's raw signals; 0 marks an unmapped
// slot. The geometry is carried for export only.
type ForcePlatform struct {
	Type     int           `json:"type"`
	Channels []int         `json:"channels"`
	Origin   [3]float64    `json:"origin"`
	Corners  [4][3]float64 `json:"corners"`
}
