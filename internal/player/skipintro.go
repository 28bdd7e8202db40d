// Package player computes player overlay state derived from playback progress.
package player

// SkipPosition marks where in the media a skip segment is anchored
type SkipPosition string

const (
	SkipStart SkipPosition = "start"
	SkipEnd   SkipPosition = "end"
)

// Visibility describes when the skip button may be shown
type Visibility string

const (
	VisibilityAlways Visibility = "always"
	VisibilityHover  Visibility = "hover"
	VisibilityNone   Visibility = "none"
)

// StatusPlaying is the only playback status in which the button is shown
const StatusPlaying = "playing"

const (
	AnimationFade    = "fade"
	AnimationSlideUp = "slide-up"

	OffsetRaised  = "raised"
	OffsetLowered = "lowered"
)

// SkipTime is one skip marker in seconds
type SkipTime struct {
	Position SkipPosition `json:"skip_position"`
	Time     float64      `json:"time"`
}

// SkipData holds the skip markers known for a media item
type SkipData struct {
	Skips []SkipTime `json:"skips"`
}

// ButtonState is the resolved skip-intro button presentation
type ButtonState struct {
	Show      bool       `json:"show"`
	Mode      Visibility `json:"mode"`
	Animation string     `json:"animation"`
	Offset    string     `json:"offset"`
}

func (d SkipData) startSkip() (SkipTime, bool) {
	for _, s := range d.Skips {
		if s.Position == SkipStart {
			return s, true
		}
	}
	return SkipTime{}, false
}

// ShouldShowSkipButton reports the visibility mode at currentTime. The button
// is visible from the start of playback until the first start marker.
func ShouldShowSkipButton(currentTime float64, data SkipData) Visibility {
	start, ok := data.startSkip()
	if !ok {
		return VisibilityNone
	}
	if currentTime >= 0 && currentTime < start.Time {
		return VisibilityAlways
	}
	return VisibilityNone
}

// ResolveButtonState combines the visibility mode with player status and
// whether the control bar is showing
func ResolveButtonState(currentTime float64, status string, controlsShowing bool, data SkipData) ButtonState {
	mode := ShouldShowSkipButton(currentTime, data)

	show := mode == VisibilityAlways || (mode == VisibilityHover && controlsShowing)
	if status != StatusPlaying {
		show = false
	}

	animation := AnimationFade
	if mode == VisibilityHover {
		animation = AnimationSlideUp
	}

	offset := OffsetRaised
	if mode == VisibilityAlways && !controlsShowing {
		offset = OffsetLowered
	}

	return ButtonState{
		Show:      show,
		Mode:      mode,
		Animation: animation,
		Offset:    offset,
	}
}

// SkipTarget returns the time to seek to when the button is pressed
func SkipTarget(data SkipData) (float64, bool) {
	start, ok := data.startSkip()
	if !ok {
		return 0, false
	}
	return start.Time, true
}
