package engine

import "testing"

func TestGameHour(t *testing.T) {
	tests := []struct {
		tick uint32
		hour int
		day  int
	}{
		{0, 0, 0},
		{32, 1, 0},
		{384, 12, 0},
		{767, 23, 0},
		{768, 0, 1},
		{800, 1, 1},
	}
	for _, tt := range tests {
		if got := GameHour(tt.tick); got != tt.hour {
			t.Errorf("GameHour(%d) = %d, want %d", tt.tick, got, tt.hour)
		}
		if got := GameDay(tt.tick); got != tt.day {
			t.Errorf("GameDay(%d) = %d, want %d", tt.tick, got, tt.day)
		}
	}
}

func TestRealSecondsToTicks(t *testing.T) {
	tests := map[float64]int{75: 1, 3600: 48, 74: 0, 149: 1, 150: 2, 0: 0}
	for s, want := range tests {
		if got := RealSecondsToTicks(s); got != want {
			t.Errorf("RealSecondsToTicks(%v) = %d, want %d", s, got, want)
		}
	}
}

func TestTicksToGameTime(t *testing.T) {
	if got := TicksToGameMinutes(32); got != 60 {
		t.Errorf("TicksToGameMinutes(32) = %v, want 60", got)
	}
	if got := TicksToGameHours(768); got != 24 {
		t.Errorf("TicksToGameHours(768) = %v, want 24", got)
	}
}
