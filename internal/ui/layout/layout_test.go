package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	header := "a\nb\nc"
	footer := "x\ny\nz"
	if got := ContentHeight(header, footer, 30); got != 24 {
		t.Errorf("ContentHeight = %d, want 24", got)
	}
	if got := ContentHeight(header, footer, 4); got != 0 {
		t.Errorf("ContentHeight = %d, want 0", got)
	}
}

func TestRenderHeaderShowsStats(t *testing.T) {
	stats := HeaderStats{Level: "Lv 2", Title: "Cloud Rookie", XPPercent: 35, Streak: "🔥 1 days"}
	out := RenderHeader("Dashboard", stats, 120)
	for _, want := range []string{"CloudQuest", "Dashboard", "Lv 2", "Cloud Rookie", "35%"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}
