package subblocks

import (
	"github.com/maxnoe/gocorsika/lib/fields"
)

// Event header ("EVTH") sub-block, CORSIKA user's guide table 8. The
// 6.5 list is the common prefix shared by every later release.
var eventHeaderFields65 = []fields.Field{
	fields.Str(1, "event_header"),
	fields.F(2, "event_number"),
	fields.F(3, "particle_id"),
	fields.F(4, "total_energy"),
	fields.F(5, "starting_altitude"),
	fields.F(6, "first_target_id"),
	fields.F(7, "first_interaction_height"),
	fields.F(8, "momentum_x"),
	fields.F(9, "momentum_y"),
	fields.F(10, "momentum_minus_z"),
	fields.F(11, "zenith"),
	fields.F(12, "azimuth"),
	fields.F(13, "n_random_sequences"),
	fields.FArr(13+1, "random_seeds", 10, 3),
	fields.F(44, "run_number"),
	fields.F(45, "date"),
	fields.F(46, "version"),
	fields.F(47, "n_observation_levels"),
	fields.FArr(47+1, "observation_height", 10),
	fields.F(58, "energy_spectrum_slope"),
	fields.F(59, "energy_min"),
	fields.F(60, "energy_max"),
	fields.F(61, "energy_cutoff_hadrons"),
	fields.F(62, "energy_cutoff_muons"),
	fields.F(63, "energy_cutoff_electrons"),
	fields.F(64, "energy_cutoff_photons"),
	fields.F(65, "nflain"),
	fields.F(66, "nfdif"),
	fields.F(67, "nflpi0"),
	fields.F(68, "nflpif"),
	fields.F(69, "nflche"),
	fields.F(70, "nfragm"),
	fields.F(71, "earth_magnetic_field_x"),
	fields.F(72, "earth_magnetic_field_z"),
	fields.F(73, "egs4_flag"),
	fields.F(74, "nkg_flag"),
	fields.F(75, "low_energy_hadron_model"),
	fields.F(76, "high_energy_hadron_model"),
	fields.F(77, "cerenkov_flag"),
	fields.F(78, "neutrino_flag"),
	fields.F(79, "curved_flag"),
	fields.F(80, "computer"),
	fields.F(81, "theta_min"),
	fields.F(82, "theta_max"),
	fields.F(83, "phi_min"),
	fields.F(84, "phi_max"),
	fields.F(85, "cherenkov_bunch_size"),
	fields.F(86, "n_cherenkov_detectors_x"),
	fields.F(87, "n_cherenkov_detectors_y"),
	fields.F(88, "cherenkov_detector_grid_spacing_x"),
	fields.F(89, "cherenkov_detector_grid_spacing_y"),
	fields.F(90, "cherenkov_detector_length_x"),
	fields.F(91, "cherenkov_detector_length_y"),
	fields.F(92, "cherenkov_output_flag"),
	fields.F(93, "angle_array_x_magnetic_north"),
	fields.F(94, "additional_muon_information_flag"),
	fields.F(95, "egs4_multpliple_scattering_step_length_factor"),
	fields.F(96, "cherenkov_wavelength_min"),
	fields.F(97, "cherenkov_wavelength_max"),
	fields.F(98, "n_reuse"),
	fields.FArr(98+1, "reuse_x", 20),
	fields.FArr(118+1, "reuse_y", 20),
	fields.F(139, "sybill_interaction_flag"),
	fields.F(140, "sybill_cross_section_flag"),
	fields.F(141, "qgsjet_interaction_flag"),
	fields.F(142, "qgsjet_cross_section_flag"),
	fields.F(143, "dpmjet_interaction_flag"),
	fields.F(144, "dpmjet_cross_section_flag"),
	fields.F(145, "venus_nexus_epos_cross_section_flag"),
	fields.F(146, "muon_multiple_scattering_flag"),
	fields.F(147, "nkg_radial_distribution_range"),
	fields.F(148, "energy_fraction_if_thinning_level_hadronic"),
	fields.F(149, "energy_fraction_if_thinning_level_em"),
	fields.F(150, "actual_weight_limit_thinning_hadronic"),
	fields.F(151, "actual_weight_limit_thinning_em"),
	fields.F(152, "max_radius_radial_thinning_cutting"),
	fields.F(153, "viewcone_inner_angle"),
	fields.F(154, "viewcone_outer_angle"),
	fields.F(155, "transition_energy_low_high_energy_model"),
}

var eventHeaderFields73 = append(append([]fields.Field{}, eventHeaderFields65...),
	fields.F(156, "skimming_incidence_flag"),
	fields.F(157, "horizontal_shower_exis_altitude"),
	fields.F(158, "starting_height"),
	fields.F(159, "explicit_charm_generation_flag"),
	fields.F(160, "electromagnetic_subshower_hadronic_origin_output_flag"),
	fields.F(161, "conex_min_vertical_depth"),
	fields.F(162, "conex_high_energy_treshold_hadrons"),
	fields.F(163, "conex_high_energy_treshold_muons"),
	fields.F(164, "conex_high_energy_treshold_em"),
	fields.F(165, "conex_low_energy_treshold_hadrons"),
	fields.F(166, "conex_low_energy_treshold_muons"),
	fields.F(167, "conex_low_energy_treshold_em"),
	fields.F(168, "observaton_level_curvature_flag"),
	fields.F(169, "conex_weight_limit_thinning_hadronic"),
	fields.F(170, "conex_weight_limit_thinning_em"),
	fields.F(171, "conex_weight_limit_sampling_hadronic"),
	fields.F(172, "conex_weight_limit_sampling_muons"),
	fields.F(173, "conex_weight_limit_sampling_em"),
)

// 7.4 changed no event header fields; 7.6 and 7.7 reuse the 7.5 list.
var eventHeaderFields75 = append(append([]fields.Field{}, eventHeaderFields73...),
	fields.F(174, "augerhit_stripes_half_width"),
	fields.F(175, "augerhit_detector_distance"),
	fields.F(176, "augerhit_reserved"),
	fields.F(177, "n_multithin"),
	fields.FArr(177+1, "multithin_energy_fraction_hadronic", 6),
	fields.FArr(183+1, "multithin_weight_limit_hadronic", 6),
	fields.FArr(189+1, "multithin_energy_fraction_em", 6),
	fields.FArr(195+1, "multithin_weight_limit_em", 6),
	fields.FArr(199+3, "multithin_random_seeds", 6, 3),
	fields.F(220, "icecube_energy_threshold"),
	fields.F(221, "icecube_gzip_flag"),
	fields.F(222, "icecube_pipe_flag"),
)

var (
	eventHeaderLayout65 = fields.MustLayout(eventHeaderFields65)
	eventHeaderLayout73 = fields.MustLayout(eventHeaderFields73)
	eventHeaderLayout75 = fields.MustLayout(eventHeaderFields75)
)
