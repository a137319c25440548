package subblocks

import (
	"math"
	"strings"
	"testing"

	"github.com/maxnoe/gocorsika/lib/blockio"
	"github.com/maxnoe/gocorsika/lib/eq"
	"github.com/maxnoe/gocorsika/lib/fields"
)

func putF(block []byte, position int, x float32) {
	order := blockio.SystemByteOrder()
	order.PutUint32(block[4*(position-1):], math.Float32bits(x))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		marker string
		kind   Kind
	}{
		{"RUNH", RunHeader},
		{"EVTH", EventHeader},
		{"LONG", Longitudinal},
		{"EVTE", EventEnd},
		{"RUNE", RunEnd},
		{"\x00\x00\x00\x00", ParticleData},
		{"ABCD", ParticleData},
	}

	for i := range tests {
		block := make([]byte, blockio.BlockSizeBytes)
		copy(block, tests[i].marker)
		if kind := KindOf(block); kind != tests[i].kind {
			t.Errorf("%d) Expected marker '%s' to classify as %s, got %s.",
				i, tests[i].marker, tests[i].kind, kind)
		}
	}
}

func TestVersion(t *testing.T) {
	block := make([]byte, blockio.BlockSizeBytes)
	copy(block, "RUNH")
	putF(block, 4, 7.741)

	v := Version(block)
	if math.Abs(v-7.741) > 1e-4 {
		t.Errorf("Expected version = 7.741, got %g.", v)
	}
}

func TestEventHeaderVersions(t *testing.T) {
	tests := []struct {
		version float64
		known   bool
	}{
		{6.5, true},
		{7.3, true},
		{7.4, true},
		{7.5, true},
		{7.6, true},
		{7.741, true},
		{5.9, false},
		{8.1, false},
		{0, false},
	}

	latest, _ := EventHeaderLayout(7.7)
	for i := range tests {
		layout, known := EventHeaderLayout(tests[i].version)
		if known != tests[i].known {
			t.Errorf("%d) Expected known = %v for version %g, got %v.",
				i, tests[i].known, tests[i].version, known)
		}
		if layout == nil {
			t.Fatalf("%d) Got a nil layout for version %g.",
				i, tests[i].version)
		}
		if !tests[i].known && layout != latest {
			t.Errorf("%d) Expected version %g to fall back to the "+
				"newest layout.", i, tests[i].version)
		}
	}
}

func TestRunHeaderVersions(t *testing.T) {
	latest, _ := RunHeaderLayout(7.7)

	if layout, known := RunHeaderLayout(6.5); !known {
		t.Errorf("Expected version 6.5 to be known.")
	} else if layout == latest {
		t.Errorf("Expected the 6.5 run header to differ from the "+
			"newest one.")
	}

	if layout, known := RunHeaderLayout(9.0); known {
		t.Errorf("Expected version 9.0 to be unknown.")
	} else if layout != latest {
		t.Errorf("Expected version 9.0 to fall back to the newest layout.")
	}
}

// CORSIKA only ever appends fields, so every version's field list must
// be a prefix of the next version's list.
func TestVersionsAreCumulative(t *testing.T) {
	eventHeader := []*fields.Layout{
		eventHeaderLayout65, eventHeaderLayout73, eventHeaderLayout75,
	}
	runHeader := []*fields.Layout{runHeaderLayout65, runHeaderLayout75}

	for _, layouts := range [][]*fields.Layout{eventHeader, runHeader} {
		for i := 1; i < len(layouts); i++ {
			prev, next := layouts[i-1].Names(), layouts[i].Names()
			if len(prev) >= len(next) {
				t.Errorf("Expected layout %d to have more fields than "+
					"layout %d.", i, i-1)
			}
			if !eq.Strings(prev, next[:len(prev)]) {
				t.Errorf("Expected the fields of layout %d to be a "+
					"prefix of layout %d.", i-1, i)
			}
		}
	}
}

// Sanity-checks the hand-maintained tables against the sub-block
// documentation: the markers sit at element 1 and a couple of
// spot-check fields sit where the user's guide places them.
func TestTablePositions(t *testing.T) {
	tests := []struct {
		layout   *fields.Layout
		name     string
		position int
	}{
		{runHeaderLayout75, "run_header", 1},
		{runHeaderLayout75, "version", 4},
		{runHeaderLayout75, "aatm", 255},
		{runHeaderLayout75, "nflche_100nfragm", 273},
		{eventHeaderLayout75, "event_header", 1},
		{eventHeaderLayout75, "total_energy", 4},
		{eventHeaderLayout75, "zenith", 11},
		{eventHeaderLayout75, "random_seeds", 14},
		{eventHeaderLayout75, "icecube_pipe_flag", 222},
		{eventEndLayout, "n_particles_written", 7},
		{runEndLayout, "n_events", 3},
		{longitudinalLayout, "data", 7},
	}

	for i := range tests {
		f, ok := tests[i].layout.Field(tests[i].name)
		if !ok {
			t.Errorf("%d) Expected the field '%s' to exist.",
				i, tests[i].name)
		} else if f.Position != tests[i].position {
			t.Errorf("%d) Expected '%s' at position %d, got %d.",
				i, tests[i].name, tests[i].position, f.Position)
		}
	}
}

func TestParticles(t *testing.T) {
	block := make([]byte, blockio.BlockSizeBytes)

	// Two real particles, then zero-filled padding. 75000 is a muon at
	// observation level 0 in CORSIKA's packed description encoding.
	rows := [][ParticleSize]float32{
		{75000, 1, 2, 3, 40, 50, 60},
		{14000, -1, -2, -3, -40, -50, -60},
	}
	for i := range rows {
		for j := range rows[i] {
			putF(block, i*ParticleSize+j+1, rows[i][j])
		}
	}

	particles, err := Particles(block)
	if err != nil { t.Fatalf("Particles failed: %s", err.Error()) }

	if len(particles) != 2 {
		t.Fatalf("Expected 2 particles, got %d.", len(particles))
	}

	p := particles[0]
	got := []float32{p.Description, p.Px, p.Py, p.Pz, p.X, p.Y, p.T}
	if !eq.Float32s(got, rows[0][:]) {
		t.Errorf("Expected particle 0 = %v, got %v.", rows[0], got)
	}
	if particles[1].Description != 14000 {
		t.Errorf("Expected particle 1 description = 14000, got %g.",
			particles[1].Description)
	}
}

func TestParticlesFullBlock(t *testing.T) {
	block := make([]byte, blockio.BlockSizeBytes)
	for i := 0; i < ParticlesPerBlock; i++ {
		putF(block, i*ParticleSize+1, float32(i+1))
	}

	particles, err := Particles(block)
	if err != nil { t.Fatalf("Particles failed: %s", err.Error()) }
	if len(particles) != ParticlesPerBlock {
		t.Errorf("Expected %d particles, got %d.",
			ParticlesPerBlock, len(particles))
	}
}

func TestCherenkovBunches(t *testing.T) {
	block := make([]byte, blockio.BlockSizeBytes)
	row := []float32{100, 1, 2, 0.1, 0.2, 30, 800e2}
	for j := range row { putF(block, j+1, row[j]) }

	bunches, err := CherenkovBunches(block)
	if err != nil { t.Fatalf("CherenkovBunches failed: %s", err.Error()) }
	if len(bunches) != 1 {
		t.Fatalf("Expected 1 bunch, got %d.", len(bunches))
	}

	b := bunches[0]
	got := []float32{b.NPhotons, b.X, b.Y, b.U, b.V, b.T, b.Height}
	if !eq.Float32s(got, row) {
		t.Errorf("Expected bunch = %v, got %v.", row, got)
	}
}

// Every marker field must hold the ASCII marker its kind is detected
// by, so decoding and re-classifying stays consistent.
func TestMarkersMatchKinds(t *testing.T) {
	tests := []struct {
		layout *fields.Layout
		field  string
		marker string
	}{
		{runHeaderLayout75, "run_header", "RUNH"},
		{eventHeaderLayout75, "event_header", "EVTH"},
		{eventEndLayout, "event_end", "EVTE"},
		{runEndLayout, "run_end", "RUNE"},
		{longitudinalLayout, "longitudinal", "LONG"},
	}

	for i := range tests {
		block := make([]byte, blockio.BlockSizeBytes)
		copy(block, tests[i].marker)

		r, err := tests[i].layout.Decode(block)
		if err != nil { t.Fatalf("%d) Decode failed: %s", i, err.Error()) }

		s, err := r.Str(tests[i].field)
		if err != nil {
			t.Fatalf("%d) Reading the marker failed: %s", i, err.Error())
		}
		if !strings.HasPrefix(s, tests[i].marker) {
			t.Errorf("%d) Expected marker '%s', got '%s'.",
				i, tests[i].marker, s)
		}
	}
}
