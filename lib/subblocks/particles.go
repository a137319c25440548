package subblocks

import (
	"fmt"
	"math"

	"github.com/maxnoe/gocorsika/lib/blockio"
)

const (
	// ParticleSize is the number of 4-byte values per particle row.
	ParticleSize = 7
	// ParticlesPerBlock is the number of particle rows in a data block.
	ParticlesPerBlock = blockio.BlockSize / ParticleSize
)

// Particle is one row of a particle data sub-block. Description packs
// particle id x 1000 + hadronic generation x 10 + observation level.
// Momenta are in GeV/c, positions in cm, and T is the arrival time in
// ns, or the height of the first interaction in cm for the first row
// of a shower with the extra muon information option.
type Particle struct {
	Description float32
	Px, Py, Pz  float32
	X, Y        float32
	T           float32
}

// CherenkovBunch is one photon bunch of a Cherenkov output block.
// Positions are in cm, U and V are direction cosines, T is in ns, and
// Height is the production height in cm.
type CherenkovBunch struct {
	NPhotons float32
	X, Y     float32
	U, V     float32
	T        float32
	Height   float32
}

// rows decodes a data block into flat rows of ParticleSize floats. The
// trailing rows of the last data block of an event are zero-filled
// padding, so rows stop at the first row whose leading value is zero.
func rows(block []byte) ([][ParticleSize]float32, error) {
	if len(block) != blockio.BlockSizeBytes {
		return nil, fmt.Errorf("A data block must have %d bytes, but %d "+
			"were given.", blockio.BlockSizeBytes, len(block))
	}

	order := blockio.SystemByteOrder()
	out := make([][ParticleSize]float32, 0, ParticlesPerBlock)
	for i := 0; i < ParticlesPerBlock; i++ {
		var row [ParticleSize]float32
		for j := 0; j < ParticleSize; j++ {
			bits := order.Uint32(block[4*(i*ParticleSize+j):])
			row[j] = math.Float32frombits(bits)
		}
		if row[0] == 0 { break }
		out = append(out, row)
	}
	return out, nil
}

// Particles decodes a particle data block, dropping the zero padding at
// its end.
func Particles(block []byte) ([]Particle, error) {
	raw, err := rows(block)
	if err != nil { return nil, err }

	out := make([]Particle, len(raw))
	for i, r := range raw {
		out[i] = Particle{r[0], r[1], r[2], r[3], r[4], r[5], r[6]}
	}
	return out, nil
}

// CherenkovBunches decodes a Cherenkov photon block, dropping the zero
// padding at its end.
func CherenkovBunches(block []byte) ([]CherenkovBunch, error) {
	raw, err := rows(block)
	if err != nil { return nil, err }

	out := make([]CherenkovBunch, len(raw))
	for i, r := range raw {
		out[i] = CherenkovBunch{r[0], r[1], r[2], r[3], r[4], r[5], r[6]}
	}
	return out, nil
}
