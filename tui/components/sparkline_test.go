package components

import "testing"

func TestSparkline(t *testing.T) {
	data := []float64{1, 25, 50, 75, 100, 50, 25, 1}
	result := Sparkline(data, 8)
	if len([]rune(result)) != 8 {
		t.Errorf("expected 8 chars, got %d", len([]rune(result)))
	}
}

func TestSparklineEmpty(t *testing.T) {
	result := Sparkline(nil, 8)
	if result != "        " {
		t.Errorf("expected 8 spaces for empty data, got %q", result)
	}
}

func TestSparklineSingleValue(t *testing.T) {
	result := Sparkline([]float64{50}, 4)
	if len([]rune(result)) != 4 {
		t.Errorf("expected 4 chars, got %d", len([]rune(result)))
	}
}

func TestSparklineGaps(t *testing.T) {
	result := []rune(Sparkline([]float64{10, 0, 20}, 3))
	if result[1] != ' ' {
		t.Errorf("expected gap for lost probe, got %q", result[1])
	}
	if result[0] != '▁' || result[2] != '█' {
		t.Errorf("expected lowest and highest blocks, got %q", string(result))
	}
}

func TestFormatRTT(t *testing.T) {
	tests := []struct {
		ms       float64
		expected string
	}{
		{0, "-"},
		{0.25, "250us"},
		{1.5, "1.50ms"},
		{42, "42ms"},
		{1500, "1.5s"},
	}
	for _, tt := range tests {
		got := FormatRTT(tt.ms)
		if got != tt.expected {
			t.Errorf("FormatRTT(%f) = %q, want %q", tt.ms, got, tt.expected)
		}
	}
}
