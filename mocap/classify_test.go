package mocap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsForceChannel(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil, 2, 8, 1, ForcePlatform{Channels: []int{0, 5, 6}})

	tests := []struct {
		channel int
		want    bool
	}{
		{0, false},
		{5, true},
		{6, true},
		{7, false},
		{1, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsForceChannel(s, tc.channel), "channel %d", tc.channel)
	}
}

func TestIsForceChannel_DuplicateOwnership(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil, 2, 8, 1,
		ForcePlatform{Channels: []int{1, 2, 3}},
		ForcePlatform{Channels: []int{3, 4}},
	)
	for _, c := range []int{1, 2, 3, 4} {
		assert.True(t, IsForceChannel(s, c), "channel %d", c)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ForceChannels(s))
}

func TestIsForceChannel_NoPlatforms(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil, 2, 4, 1)
	for c := 0; c <= 4; c++ {
		assert.False(t, IsForceChannel(s, c))
	}
	assert.Empty(t, ForceChannels(s))
}
