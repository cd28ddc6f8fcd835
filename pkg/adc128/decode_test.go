package adc128

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeByteOrder(t *testing.T) {
	p, err := ParsePlan("0", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := NewBlock(p)
	copy(b.Rx, []byte{0xAA, 0xBB, 0x01, 0x02}) // first frame is skipped

	dec, err := NewDecoder(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ch, val, ok := dec.Next()
	if !ok {
		t.Fatal("expected one word")
	}
	if ch != 0 {
		t.Errorf("expected channel 0, got %d", ch)
	}
	if val != 0x0102 {
		t.Errorf("expected 0x0102, got %#04x", val)
	}
}

func TestDecodeOrder(t *testing.T) {
	p, err := ParsePlan("0123", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := NewBlock(p)

	// distinct value per word so order mistakes show up
	for i := 0; i < p.Words(); i++ {
		binary.BigEndian.PutUint16(b.Rx[FrameSize+i*FrameSize:], uint16(1000+i))
	}

	dec, err := NewDecoder(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCh := []int{0, 1, 2, 3, 0, 1, 2, 3}
	for i := 0; i < len(wantCh); i++ {
		ch, val, ok := dec.Next()
		if !ok {
			t.Fatalf("decoder exhausted after %d words, expected %d", i, len(wantCh))
		}
		if ch != wantCh[i] {
			t.Errorf("word %d: expected channel %d, got %d", i, wantCh[i], ch)
		}
		if val != uint16(1000+i) {
			t.Errorf("word %d: expected %d, got %d", i, 1000+i, val)
		}
	}
	if _, _, ok := dec.Next(); ok {
		t.Error("expected decoder to be exhausted")
	}
	if _, _, ok := dec.Next(); ok {
		t.Error("exhausted decoder produced another word")
	}
	if dec.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", dec.Remaining())
	}
}

func TestDecodeChannelWraps(t *testing.T) {
	// plan digits stop at 9, but the decoder maps mod 16 regardless
	p, err := ParsePlan("9", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec, err := NewDecoder(NewBlock(p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ch, _, ok := dec.Next()
	if !ok || ch != 9 {
		t.Errorf("expected channel 9, got %d (ok=%t)", ch, ok)
	}
}

func TestDecodeShortBlock(t *testing.T) {
	p, err := ParsePlan("0123", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := NewBlock(p)
	b.Rx = b.Rx[:len(b.Rx)-1]

	if _, err = NewDecoder(b); !errors.Is(err, ErrShortBlock) {
		t.Errorf("expected ErrShortBlock, got %v", err)
	}
}
