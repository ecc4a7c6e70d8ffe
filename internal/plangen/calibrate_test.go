package plangen

import "testing"

func TestCalibrate_CompressesAndFloors(t *testing.T) {
	c := TimelineCalibrator{Compression: 4}
	got := c.Calibrate(TimelineEstimate{SuggestedWeeks: 24, MinimumWeeks: 12, MaximumWeeks: 48, Reasoning: "r"})
	if got.SuggestedWeeks != 6 || got.MinimumWeeks != 3 || got.MaximumWeeks != 12 {
		t.Fatalf("unexpected compression: %+v", got)
	}

	got = c.Calibrate(TimelineEstimate{SuggestedWeeks: 2, MinimumWeeks: 1, MaximumWeeks: 3, Reasoning: "r"})
	if got.SuggestedWeeks != 1 || got.MinimumWeeks != 1 || got.MaximumWeeks != 1 {
		t.Fatalf("small estimates must floor at one week: %+v", got)
	}
}

func TestCalibrate_FactorOneKeepsRawEstimate(t *testing.T) {
	c := TimelineCalibrator{Compression: 1}
	in := TimelineEstimate{SuggestedWeeks: 8, MinimumWeeks: 4, MaximumWeeks: 16, Reasoning: "r"}
	if got := c.Calibrate(in); got != in {
		t.Fatalf("factor 1 changed the estimate: %+v", got)
	}
}

func TestRepair_ClampsViolatingBounds(t *testing.T) {
	got := Repair(TimelineEstimate{SuggestedWeeks: 6, MinimumWeeks: 9, MaximumWeeks: 16})
	if got.MinimumWeeks != 4 {
		t.Fatalf("minimum should clamp to suggested-2, got %d", got.MinimumWeeks)
	}

	got = Repair(TimelineEstimate{SuggestedWeeks: 2, MinimumWeeks: 3, MaximumWeeks: 16})
	if got.MinimumWeeks != 1 {
		t.Fatalf("clamped minimum floors at 1, got %d", got.MinimumWeeks)
	}

	got = Repair(TimelineEstimate{SuggestedWeeks: 10, MinimumWeeks: 2, MaximumWeeks: 5})
	if got.MaximumWeeks != 20 {
		t.Fatalf("maximum should clamp to suggested*2, got %d", got.MaximumWeeks)
	}
}

func TestRepair_InvariantAlwaysHolds(t *testing.T) {
	cases := []TimelineEstimate{
		{SuggestedWeeks: 0, MinimumWeeks: 0, MaximumWeeks: 0},
		{SuggestedWeeks: 1, MinimumWeeks: 50, MaximumWeeks: 0},
		{SuggestedWeeks: 100, MinimumWeeks: 200, MaximumWeeks: 3},
		{SuggestedWeeks: 8, MinimumWeeks: 4, MaximumWeeks: 16},
	}
	for _, in := range cases {
		got := Repair(in)
		if !(1 <= got.MinimumWeeks && got.MinimumWeeks <= got.SuggestedWeeks && got.SuggestedWeeks <= got.MaximumWeeks) {
			t.Fatalf("invariant violated for %+v -> %+v", in, got)
		}
	}
}

func TestIntensityFor(t *testing.T) {
	cases := []struct {
		selected, suggested int
		level               string
	}{
		{12, 8, "relaxed"},
		{8, 8, "moderate"},
		{6, 8, "intensive"},
		{4, 8, "extreme"},
	}
	for _, tc := range cases {
		if got := IntensityFor(tc.selected, tc.suggested); got.Level != tc.level {
			t.Fatalf("IntensityFor(%d,%d) = %s, want %s", tc.selected, tc.suggested, got.Level, tc.level)
		}
	}
}

func TestFormatWeeks(t *testing.T) {
	cases := map[int]string{
		1:  "1 week",
		3:  "3 weeks",
		4:  "1 month",
		8:  "2 months",
		5:  "1 month and 1 week",
		11: "2 months and 3 weeks",
	}
	for weeks, want := range cases {
		if got := FormatWeeks(weeks); got != want {
			t.Fatalf("FormatWeeks(%d) = %q, want %q", weeks, got, want)
		}
	}
}
