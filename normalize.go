package vrcursor

// normalizedSample is the immutable result of normalizing one raw sample.
// Values flow through the worker by copy; nothing downstream mutates them.
type normalizedSample struct {
	x, y   float64 // normalized axes in [-1, 1]
	zDir   float64 // depth step direction: -1, 0, or +1
	active bool
}

// normalize maps a raw device position into normalized axes.
//
// The X axis maps the device range onto [-1, 1] directly; the Y axis is
// inverted so that the top of the device range is +1 (device Y grows
// downward, scene Y grows upward). Scroll up steps the cursor away from the
// camera (zDir -1, since depth is negative in front of the camera); scroll
// down steps it closer. The active flag latches on Down, clears on Up, and
// otherwise carries prevActive forward.
//
// Returns ok=false when either axis reports no valid motion range; such
// samples produce no output and no controller update.
func normalize(x, y float64, rangeX, rangeY MotionRange, action Action, scrollY float64, prevActive bool) (normalizedSample, bool) {
	if !rangeX.Valid() || !rangeY.Valid() {
		return normalizedSample{}, false
	}

	s := normalizedSample{
		x: x/(rangeX.Max+1)*2 - 1,
		y: 1 - y/(rangeY.Max+1)*2,
	}

	if action == ActionScroll {
		if scrollY > 0 {
			s.zDir = -1
		} else {
			s.zDir = 1
		}
	}

	switch action {
	case ActionDown:
		s.active = true
	case ActionUp:
		s.active = false
	default:
		s.active = prevActive
	}
	return s, true
}
