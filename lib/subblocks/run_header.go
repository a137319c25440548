package subblocks

import (
	"github.com/maxnoe/gocorsika/lib/fields"
)

// Run header ("RUNH") sub-block, CORSIKA user's guide table 7.
// Positions are the 1-based element numbers used by the guide.
var runHeaderFields65 = []fields.Field{
	fields.Str(1, "run_header"),
	fields.F(2, "run_number"),
	fields.F(3, "date"),
	fields.F(4, "version"),
	fields.F(5, "n_observation_levels"),
	fields.FArr(5+1, "observation_height", 10),
	fields.F(16, "energy_spectrum_slope"),
	fields.F(17, "energy_min"),
	fields.F(18, "energy_max"),
	fields.F(19, "egs4_flag"),
	fields.F(20, "nkg_flag"),
	fields.F(21, "energy_cutoff_hadrons"),
	fields.F(22, "energy_cutoff_muons"),
	fields.F(23, "energy_cutoff_electrons"),
	fields.F(24, "energy_cutoff_photons"),
	fields.FArr(24+1, "physical_constants", 50),
	fields.F(94, "n_showers"),
	fields.FArr(94+1, "cka", 40),
	fields.FArr(134+1, "ceta", 5),
	fields.FArr(139+1, "cstrba", 11),
	fields.F(248, "x_scatter"),
	fields.F(249, "y_scatter"),
	fields.FArr(249+1, "hlay", 5),
	fields.FArr(254+1, "aatm", 5),
	fields.FArr(259+1, "batm", 5),
	fields.FArr(264+1, "catm", 5),
	fields.F(270, "nflain"),
	fields.F(271, "nfldif"),
	fields.F(272, "nflpi0_100nflpif"),
	fields.F(273, "nflche_100nfragm"),
}

// 7.5 added the inclined observation plane. Its fields sit in a gap of
// the older layout, so appending them keeps the table cumulative.
var runHeaderFields75 = append(append([]fields.Field{}, runHeaderFields65...),
	fields.F(75, "obsplane_x"),
	fields.F(76, "obsplane_y"),
	fields.F(77, "obsplane_z"),
	fields.F(78, "obsplane_theta"),
	fields.F(79, "obsplane_phi"),
)

var (
	runHeaderLayout65 = fields.MustLayout(runHeaderFields65)
	runHeaderLayout75 = fields.MustLayout(runHeaderFields75)
)
