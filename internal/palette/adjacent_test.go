package palette

import (
	"errors"
	"fmt"
	"testing"

	"seedscape/internal/seed"
)

func TestFromSeedKnown(t *testing.T) {
	got, err := FromSeed("test2")
	if err != nil {
		t.Fatalf("FromSeed returned error: %v", err)
	}
	want := RGB{196.34719848632812, 255, 211.26815043389797}
	if !nearRGB(got, want, 1e-6) {
		t.Errorf("FromSeed(test2) = %v, want %v", got, want)
	}
}

func TestFromSeedInvalid(t *testing.T) {
	if _, err := FromSeed("\xff"); !errors.Is(err, seed.ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got %v", err)
	}
}

func TestAdjacentKnown(t *testing.T) {
	got, err := Adjacent(RGB{200, 100, 50}, "seed", 2)
	if err != nil {
		t.Fatalf("Adjacent returned error: %v", err)
	}
	want := RGB{224.4384765625, 63.064417392015464, 86.66051446351342}
	if !nearRGB(got, want, 1e-6) {
		t.Errorf("Adjacent = %v, want %v", got, want)
	}
}

// TestAdjacentHueWraps starts at hue 0 and applies a negative hue delta;
// the result must land just below 1, not at 0 or below.
func TestAdjacentHueWraps(t *testing.T) {
	base := RGB{200, 10, 10}
	if h := base.HSV().H; h != 0 {
		t.Fatalf("base hue = %v, want 0", h)
	}
	got, err := Adjacent(base, "test2", 2)
	if err != nil {
		t.Fatalf("Adjacent returned error: %v", err)
	}
	// (0.375732421875 - 0.5) * 0.1 * 2 = -0.024853515625
	want := 1 - 0.024853515625
	if h := got.HSV().H; !near(h, want, 1e-9) {
		t.Errorf("hue = %v, want %v", h, want)
	}
}

func TestAdjacentClampsLow(t *testing.T) {
	got, err := Adjacent(RGB{100, 100, 100}, "test2", 2)
	if err != nil {
		t.Fatalf("Adjacent returned error: %v", err)
	}
	hsv := got.HSV()
	if hsv.S != 0 {
		t.Errorf("saturation = %v, want exactly 0", hsv.S)
	}
	if got.R != got.G || got.G != got.B {
		t.Errorf("zero saturation should give a grey, got %v", got)
	}

	dark, err := Adjacent(RGB{100, 100, 100}, "test2", 100)
	if err != nil {
		t.Fatalf("Adjacent returned error: %v", err)
	}
	if dark != (RGB{0, 0, 0}) {
		t.Errorf("value should clamp to 0, got %v", dark)
	}
}

func TestAdjacentClampsHigh(t *testing.T) {
	// "delta" draws saturation and value deltas above 0.5.
	got, err := Adjacent(RGB{200, 100, 100}, "delta", 100)
	if err != nil {
		t.Fatalf("Adjacent returned error: %v", err)
	}
	hsv := got.HSV()
	if !near(hsv.S, 1, tolerance) {
		t.Errorf("saturation = %v, want 1", hsv.S)
	}
	if !near(hsv.V, 255, tolerance) {
		t.Errorf("value = %v, want 255", hsv.V)
	}
	hi := max(got.R, got.G, got.B)
	lo := min(got.R, got.G, got.B)
	if !near(hi, 255, tolerance) || !near(lo, 0, tolerance) {
		t.Errorf("fully saturated bright color should span 0..255, got %v", got)
	}
}

func TestAdjacentZeroFactor(t *testing.T) {
	base := RGB{12, 200, 99}
	got, err := Adjacent(base, "anything", 0)
	if err != nil {
		t.Fatalf("Adjacent returned error: %v", err)
	}
	if !nearRGB(got, base, 1e-9) {
		t.Errorf("factor 0 should return base, got %v", got)
	}
}

func TestChainKnown(t *testing.T) {
	base, _ := FromSeed("test2")
	got, err := Chain(base, "test2", 3, DefaultFactor)
	if err != nil {
		t.Fatalf("Chain returned error: %v", err)
	}
	want := []RGB{
		{206.45896617583932, 255, 199.16583251953125},
		{202.98580169677734, 243.375, 221.5243056689389},
		{217.26516723632812, 255, 219.86680707335475},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d colors, got %d", len(want), len(got))
	}
	for i := range want {
		if !nearRGB(got[i], want[i], 1e-6) {
			t.Errorf("Chain[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChainUsesChainedSeeds(t *testing.T) {
	base := RGB{120, 80, 200}
	got, err := Chain(base, "seed", 3, 2)
	if err != nil {
		t.Fatalf("Chain returned error: %v", err)
	}
	s := "seed"
	for i := range got {
		s, _ = seed.Next(s)
		want, _ := Adjacent(base, s, 2)
		if got[i] != want {
			t.Errorf("Chain[%d] = %v, want Adjacent(base, %q) = %v", i, got[i], s, want)
		}
	}
}

func TestChainSeedChangesEveryColor(t *testing.T) {
	base := RGB{120, 80, 200}
	a, _ := Chain(base, "seed", 3, 2)
	b, _ := Chain(base, "seed2", 3, 2)
	for i := range a {
		if a[i] == b[i] {
			t.Errorf("Chain[%d] unchanged after changing the seed: %v", i, a[i])
		}
	}
}

func TestChainEmptyAndNegative(t *testing.T) {
	got, err := Chain(RGB{1, 2, 3}, "seed", 0, 2)
	if err != nil || len(got) != 0 {
		t.Errorf("Chain(k=0) = %v, %v", got, err)
	}
	if _, err := Chain(RGB{1, 2, 3}, "seed", -1, 2); !errors.Is(err, seed.ErrOutOfRange) {
		t.Errorf("Chain(k=-1) error = %v, want ErrOutOfRange", err)
	}
}

// TestChainFactorScalesDeviation checks that across many seeds a larger
// factor yields a larger total deviation from the base.
func TestChainFactorScalesDeviation(t *testing.T) {
	base := RGB{128, 100, 80}
	total := func(factor float64) float64 {
		sum := 0.0
		for i := 0; i < 200; i++ {
			colors, err := Chain(base, fmt.Sprintf("seed-%d", i), 3, factor)
			if err != nil {
				t.Fatalf("Chain returned error: %v", err)
			}
			for _, c := range colors {
				sum += Distance(base, c)
			}
		}
		return sum
	}
	small, medium, large := total(0.5), total(2), total(4)
	if !(small < medium && medium < large) {
		t.Errorf("deviation should grow with factor: %v, %v, %v", small, medium, large)
	}
}

func BenchmarkChain(b *testing.B) {
	base := RGB{128, 100, 80}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Chain(base, "test2", 8, DefaultFactor)
	}
}
