package subblocks

import (
	"github.com/maxnoe/gocorsika/lib/fields"
)

// Event end ("EVTE") sub-block. The elements between the particle
// counts and the longitudinal fit hold the NKG output, which is only
// meaningful with the NKG option and is left unaddressed here.
var eventEndFields = []fields.Field{
	fields.Str(1, "event_end"),
	fields.F(2, "event_number"),
	fields.F(3, "n_photons_weighted"),
	fields.F(4, "n_electrons_weighted"),
	fields.F(5, "n_hadrons_weighted"),
	fields.F(6, "n_muons_weighted"),
	fields.F(7, "n_particles_written"),
	fields.FArr(255+1, "longitudinal_fit_parameters", 6),
	fields.F(262, "chi2_longitudinal_fit"),
	fields.F(263, "n_photons_written"),
	fields.F(264, "n_electrons_written"),
	fields.F(265, "n_hadrons_written"),
	fields.F(266, "n_muons_written"),
	fields.F(267, "n_em_particles_preshower"),
}

// Run end ("RUNE") sub-block.
var runEndFields = []fields.Field{
	fields.Str(1, "run_end"),
	fields.F(2, "run_number"),
	fields.F(3, "n_events"),
}

var (
	eventEndLayout = fields.MustLayout(eventEndFields)
	runEndLayout   = fields.MustLayout(runEndFields)
)
