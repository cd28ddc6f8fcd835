package adc128

import (
	"errors"
	"testing"
)

func TestParsePlan(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		p, err := ParsePlan("0011", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int{0, 0, 1, 1}
		got := p.Channels()
		if len(got) != len(want) {
			t.Fatalf("expected %d channels, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("channel %d: expected %d, got %d", i, want[i], got[i])
			}
		}
		if p.Samples() != 2 {
			t.Errorf("expected 2 samples, got %d", p.Samples())
		}
		if p.Words() != 8 {
			t.Errorf("expected 8 words, got %d", p.Words())
		}
	})

	t.Run("EmptySpec", func(t *testing.T) {
		_, err := ParsePlan("", 1)
		if !errors.Is(err, ErrInvalidChannelSpec) {
			t.Errorf("expected ErrInvalidChannelSpec, got %v", err)
		}
	})

	t.Run("NonDigit", func(t *testing.T) {
		_, err := ParsePlan("01a3", 1)
		if !errors.Is(err, ErrInvalidChannelSpec) {
			t.Errorf("expected ErrInvalidChannelSpec, got %v", err)
		}
	})

	t.Run("ZeroSamples", func(t *testing.T) {
		_, err := ParsePlan("0", 0)
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Errorf("expected ErrInvalidSampleCount, got %v", err)
		}
	})

	t.Run("NegativeSamples", func(t *testing.T) {
		_, err := ParsePlan("0", -3)
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Errorf("expected ErrInvalidSampleCount, got %v", err)
		}
	})
}

func TestPlanChannelsIsCopy(t *testing.T) {
	p, err := ParsePlan("123", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Channels()
	got[0] = 9
	if p.Channels()[0] != 1 {
		t.Error("mutating the returned slice changed the plan")
	}
}
