package gene

import (
	"math/rand"
	"testing"
)

func TestBitfieldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		st := rng.Intn(2) == 1
		sn := uint8(rng.Intn(128))
		tt := rng.Intn(2) == 1
		tn := uint8(rng.Intn(128))
		w := int16(rng.Intn(1<<16) - (1 << 15))

		g := New(st, sn, tt, tn, w)
		if g.SourceIsSensor() != st {
			t.Fatalf("source type mismatch: got %v want %v", g.SourceIsSensor(), st)
		}
		if g.SourceNum() != sn {
			t.Fatalf("source num mismatch: got %v want %v", g.SourceNum(), sn)
		}
		if g.SinkIsAction() != tt {
			t.Fatalf("sink type mismatch: got %v want %v", g.SinkIsAction(), tt)
		}
		if g.SinkNum() != tn {
			t.Fatalf("sink num mismatch: got %v want %v", g.SinkNum(), tn)
		}
		if g.Weight != w {
			t.Fatalf("weight mismatch: got %v want %v", g.Weight, w)
		}
	}
}

// TestS1Bitfield matches spec.md scenario S1.
func TestS1Bitfield(t *testing.T) {
	g := New(false, 16, true, 25, 1)
	if g.Encoding != 0x1099 {
		t.Fatalf("encoding = %#04x, want 0x1099", g.Encoding)
	}
	if g.Weight != 1 {
		t.Fatalf("weight = %v, want 1", g.Weight)
	}

	g.SetSourceNum(35)
	g.SetSinkNum(99)
	if g.SourceNum() != 35 {
		t.Fatalf("source num = %v, want 35", g.SourceNum())
	}
	if g.SinkNum() != 99 {
		t.Fatalf("sink num = %v, want 99", g.SinkNum())
	}
}

func TestRenumberingDomain(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const maxNeurons = 7
	const numSensors = 21
	const numActions = 17

	g := RandomGenome(rng, 200)
	out := Renumber(g, maxNeurons, numSensors, numActions)

	for _, gn := range out {
		if gn.SourceIsSensor() {
			if int(gn.SourceNum()) >= numSensors {
				t.Fatalf("sensor source index %d out of range [0,%d)", gn.SourceNum(), numSensors)
			}
		} else {
			if int(gn.SourceNum()) >= maxNeurons {
				t.Fatalf("neuron source index %d out of range [0,%d)", gn.SourceNum(), maxNeurons)
			}
		}
		if gn.SinkIsAction() {
			if int(gn.SinkNum()) >= numActions {
				t.Fatalf("action sink index %d out of range [0,%d)", gn.SinkNum(), numActions)
			}
		} else {
			if int(gn.SinkNum()) >= maxNeurons {
				t.Fatalf("neuron sink index %d out of range [0,%d)", gn.SinkNum(), maxNeurons)
			}
		}
	}
}

func TestHexWireFormat(t *testing.T) {
	g := Genome{New(false, 16, true, 25, 1), New(true, 0, false, 3, -1)}
	s := g.HexString()
	if len(s) == 0 {
		t.Fatal("expected non-empty hex string")
	}
	if want := "10990001:8003ffff"; s != want {
		t.Fatalf("HexString() = %q, want %q", s, want)
	}
}
