package subblocks

import (
	"github.com/maxnoe/gocorsika/lib/fields"
)

// Longitudinal ("LONG") sub-block: a short header followed by 26 steps
// of the shower's longitudinal profile, 10 columns per step (vertical
// depth and the particle counts of the guide's table 9).
var longitudinalFields = []fields.Field{
	fields.Str(1, "longitudinal"),
	fields.F(2, "event_number"),
	fields.F(3, "particle_id"),
	fields.F(4, "total_energy"),
	fields.F(5, "n_longitudinal"),
	fields.F(6, "longitudinal_id"),
	fields.FArr(7, "data", 26, 10),
}

var longitudinalLayout = fields.MustLayout(longitudinalFields)
