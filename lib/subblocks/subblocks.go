/*package subblocks contains the field tables for every kind of CORSIKA
sub-block, organized by the CORSIKA version that wrote the file.

The tables are data, not logic: each is an ordered list of fields.Field
values copied from the sub-block layouts in the CORSIKA user's guide,
built into an immutable fields.Layout once when the package initializes.
CORSIKA's sub-block schemas only ever grow, so each version's list is
the previous version's list with fields appended, and a version newer
than the tables falls back to the newest known layout instead of
failing.
*/
package subblocks

import (
	"math"

	"github.com/maxnoe/gocorsika/lib/blockio"
	"github.com/maxnoe/gocorsika/lib/fields"
)

// Kind identifies the type of a sub-block from its leading 4-byte
// marker. Particle-data and Cherenkov-photon blocks carry no marker, so
// any block that doesn't start with one of the known markers is data.
type Kind int

const (
	ParticleData Kind = iota
	RunHeader
	EventHeader
	Longitudinal
	EventEnd
	RunEnd
)

func (k Kind) String() string {
	switch k {
	case ParticleData: return "particle data"
	case RunHeader: return "run header"
	case EventHeader: return "event header"
	case Longitudinal: return "longitudinal"
	case EventEnd: return "event end"
	case RunEnd: return "run end"
	}
	return "unknown"
}

// KindOf classifies a block by its first four bytes.
func KindOf(block []byte) Kind {
	if len(block) < 4 { return ParticleData }
	switch string(block[:4]) {
	case "RUNH": return RunHeader
	case "EVTH": return EventHeader
	case "LONG": return Longitudinal
	case "EVTE": return EventEnd
	case "RUNE": return RunEnd
	}
	return ParticleData
}

// Version reads the CORSIKA version from a run header block. The
// version sits in the block's fourth element, before any versioned
// layout can be chosen, so it is read directly rather than through a
// Layout.
func Version(runHeader []byte) float64 {
	order := blockio.SystemByteOrder()
	return float64(math.Float32frombits(order.Uint32(runHeader[12:])))
}

// versionKey rounds a CORSIKA version like 7.741 to the one-decimal
// release series, 7.7, that the tables are keyed by.
func versionKey(version float64) float64 {
	return math.Round(version*10) / 10
}

// RunHeaderLayout returns the run header layout for the given CORSIKA
// version. Unknown versions fall back to the newest known layout and
// report known = false: the schema only ever gains fields, so the
// newest table decodes every field an older consumer could ask for.
func RunHeaderLayout(version float64) (layout *fields.Layout, known bool) {
	switch versionKey(version) {
	case 6.5, 7.3, 7.4:
		return runHeaderLayout65, true
	case 7.5, 7.6, 7.7:
		return runHeaderLayout75, true
	default:
		return runHeaderLayout75, false
	}
}

// EventHeaderLayout returns the event header layout for the given
// CORSIKA version, with the same fallback behavior as RunHeaderLayout.
func EventHeaderLayout(version float64) (layout *fields.Layout, known bool) {
	switch versionKey(version) {
	case 6.5:
		return eventHeaderLayout65, true
	case 7.3, 7.4:
		return eventHeaderLayout73, true
	case 7.5, 7.6, 7.7:
		return eventHeaderLayout75, true
	default:
		return eventHeaderLayout75, false
	}
}

// EventEndLayout returns the event end layout, which CORSIKA has never
// versioned.
func EventEndLayout() *fields.Layout { return eventEndLayout }

// RunEndLayout returns the run end layout, which CORSIKA has never
// versioned.
func RunEndLayout() *fields.Layout { return runEndLayout }

// LongitudinalLayout returns the layout of longitudinal profile
// sub-blocks.
func LongitudinalLayout() *fields.Layout { return longitudinalLayout }
