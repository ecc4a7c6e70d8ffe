package plangen

import "fmt"

// TimelineCalibrator post-processes a validated timeline estimate. Raw model
// estimates skew toward aspirational multi-month plans; dividing by the
// compression factor yields shorter defaults. Factor 1 keeps the raw output.
type TimelineCalibrator struct {
	Compression int
}

// Calibrate compresses the three week counts (each floored at one week) and
// re-enforces minimum <= suggested <= maximum by clamping the violating
// bound relative to suggested, rather than rejecting the estimate.
func (c TimelineCalibrator) Calibrate(t TimelineEstimate) TimelineEstimate {
	factor := c.Compression
	if factor < 1 {
		factor = 1
	}
	t.SuggestedWeeks = compressWeeks(t.SuggestedWeeks, factor)
	t.MinimumWeeks = compressWeeks(t.MinimumWeeks, factor)
	t.MaximumWeeks = compressWeeks(t.MaximumWeeks, factor)
	return Repair(t)
}

// Repair enforces the ordering invariant by clamping:
// a minimum above suggested becomes suggested-2 (floored at 1), and a
// maximum below suggested becomes suggested*2.
func Repair(t TimelineEstimate) TimelineEstimate {
	if t.SuggestedWeeks < 1 {
		t.SuggestedWeeks = 1
	}
	if t.MinimumWeeks > t.SuggestedWeeks {
		t.MinimumWeeks = t.SuggestedWeeks - 2
	}
	if t.MinimumWeeks < 1 {
		t.MinimumWeeks = 1
	}
	if t.MaximumWeeks < t.SuggestedWeeks {
		t.MaximumWeeks = t.SuggestedWeeks * 2
	}
	return t
}

func compressWeeks(weeks, factor int) int {
	weeks /= factor
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// Intensity describes the working pace implied by a selected week count
// relative to the suggested one.
type Intensity struct {
	Level       string
	Description string
	HoursPerDay string
}

// IntensityFor grades selected/suggested: 1.5x or slower is relaxed, at
// least the suggestion is moderate, down to 0.75x is intensive, anything
// faster is extreme.
func IntensityFor(selectedWeeks, suggestedWeeks int) Intensity {
	if suggestedWeeks < 1 {
		suggestedWeeks = 1
	}
	ratio := float64(selectedWeeks) / float64(suggestedWeeks)
	switch {
	case ratio >= 1.5:
		return Intensity{Level: "relaxed", Description: "Relaxed pace", HoursPerDay: "1-2 hours/day"}
	case ratio >= 1.0:
		return Intensity{Level: "moderate", Description: "Moderate pace", HoursPerDay: "2-3 hours/day"}
	case ratio >= 0.75:
		return Intensity{Level: "intensive", Description: "Intensive pace", HoursPerDay: "3-4 hours/day"}
	default:
		return Intensity{Level: "extreme", Description: "Very intensive pace", HoursPerDay: "5-7 hours/day"}
	}
}

// FormatWeeks renders a week count as user-facing text, switching to months
// at four weeks.
func FormatWeeks(weeks int) string {
	plural := func(n int) string {
		if n == 1 {
			return ""
		}
		return "s"
	}
	if weeks < 4 {
		return fmt.Sprintf("%d week%s", weeks, plural(weeks))
	}
	months := weeks / 4
	remaining := weeks % 4
	if remaining == 0 {
		return fmt.Sprintf("%d month%s", months, plural(months))
	}
	return fmt.Sprintf("%d month%s and %d week%s", months, plural(months), remaining, plural(remaining))
}
