package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func introData(start float64) SkipData {
	return SkipData{Skips: []SkipTime{
		{Position: SkipEnd, Time: 1300},
		{Position: SkipStart, Time: start},
	}}
}

func TestShouldShowSkipButton(t *testing.T) {
	tests := []struct {
		name string
		time float64
		data SkipData
		want Visibility
	}{
		{"no skips", 10, SkipData{}, VisibilityNone},
		{"only end marker", 10, SkipData{Skips: []SkipTime{{Position: SkipEnd, Time: 90}}}, VisibilityNone},
		{"at zero", 0, introData(90), VisibilityAlways},
		{"before marker", 89.9, introData(90), VisibilityAlways},
		{"at marker", 90, introData(90), VisibilityNone},
		{"after marker", 120, introData(90), VisibilityNone},
		{"negative time", -1, introData(90), VisibilityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldShowSkipButton(tt.time, tt.data))
		})
	}
}

func TestResolveButtonState_Playing(t *testing.T) {
	state := ResolveButtonState(10, StatusPlaying, true, introData(90))

	assert.True(t, state.Show)
	assert.Equal(t, VisibilityAlways, state.Mode)
	assert.Equal(t, AnimationFade, state.Animation)
	assert.Equal(t, OffsetRaised, state.Offset)
}

func TestResolveButtonState_ControlsHidden(t *testing.T) {
	state := ResolveButtonState(10, StatusPlaying, false, introData(90))

	assert.True(t, state.Show)
	assert.Equal(t, OffsetLowered, state.Offset)
}

func TestResolveButtonState_Paused(t *testing.T) {
	state := ResolveButtonState(10, "paused", true, introData(90))

	assert.False(t, state.Show)
}

func TestResolveButtonState_PastIntro(t *testing.T) {
	state := ResolveButtonState(200, StatusPlaying, false, introData(90))

	assert.False(t, state.Show)
	assert.Equal(t, VisibilityNone, state.Mode)
	assert.Equal(t, OffsetRaised, state.Offset)
}

func TestSkipTarget(t *testing.T) {
	target, ok := SkipTarget(introData(85.5))
	assert.True(t, ok)
	assert.Equal(t, 85.5, target)

	_, ok = SkipTarget(SkipData{})
	assert.False(t, ok)
}
