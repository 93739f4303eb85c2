package workers

import (
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	t.Setenv("RESIZE_WORKERS", "")

	availableCPU := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		minExpect  int
		maxExpect  int
	}{
		{
			name:       "CPU-bound task (1.0x multiplier)",
			multiplier: 1.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU + 1,
		},
		{
			name:       "I/O-bound task (2.0x multiplier)",
			multiplier: 2.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU*2 + 1,
		},
		{
			name:       "With limit lower than calculated",
			multiplier: 2.0,
			limit:      2,
			minExpect:  1,
			maxExpect:  2,
		},
		{
			name:       "Very low multiplier still yields one worker",
			multiplier: 0.01,
			limit:      0,
			minExpect:  1,
			maxExpect:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)

			if got < tt.minExpect {
				t.Errorf("Count(%v, %d) = %d, expected >= %d", tt.multiplier, tt.limit, got, tt.minExpect)
			}
			if got > tt.maxExpect {
				t.Errorf("Count(%v, %d) = %d, expected <= %d", tt.multiplier, tt.limit, got, tt.maxExpect)
			}
		})
	}
}

func TestCountEnvOverride(t *testing.T) {
	tests := []struct {
		name     string
		override string
		limit    int
		want     int
	}{
		{"Valid override", "7", 0, 7},
		{"Override capped by limit", "7", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RESIZE_WORKERS", tt.override)
			if got := Count(1.0, tt.limit); got != tt.want {
				t.Errorf("Count with override %q = %d, want %d", tt.override, got, tt.want)
			}
		})
	}
}

func TestCountInvalidOverrideIgnored(t *testing.T) {
	for _, override := range []string{"abc", "-2", "0"} {
		t.Setenv("RESIZE_WORKERS", override)
		if got := Count(1.0, 0); got < 1 {
			t.Errorf("Count with invalid override %q = %d, expected >= 1", override, got)
		}
	}
}

// ForResize is ceil(GOMAXPROCS/2), never below 1.
func TestForResize(t *testing.T) {
	t.Setenv("RESIZE_WORKERS", "")

	available := runtime.GOMAXPROCS(0)
	want := (available + 1) / 2
	if want < 1 {
		want = 1
	}

	if got := ForResize(); got != want {
		t.Errorf("ForResize() = %d, want %d for %d compute units", got, want, available)
	}
}
