/*shower_stats prints per-run summary statistics for a set of CORSIKA
output files.

	shower_stats file_pattern run_sequence

file_pattern is a printf pattern with one integer verb for the run
number, e.g. 'data/DAT%06d'. run_sequence is a sequence format string
selecting the runs, e.g. '1..100 - 63'. For every selected run the
number of events, the number of written particles, and the mean and
standard deviation of the primary energy and zenith angle are printed.
*/
package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	g_error "github.com/maxnoe/gocorsika/lib/error"
	"github.com/maxnoe/gocorsika/lib/format"
	"github.com/maxnoe/gocorsika/lib/showerio"
)

func main() {
	if len(os.Args) != 3 {
		g_error.External("shower_stats needs two arguments, a file "+
			"pattern and a run sequence, but got %d. Example usage:\n"+
			"    shower_stats 'data/DAT%%06d' '1..100 - 63'",
			len(os.Args)-1)
	}

	paths, err := format.ExpandRunFormat(os.Args[1], os.Args[2])
	if err != nil { g_error.External(err.Error()) }

	fmt.Printf("%-24s %8s %10s %10s %10s %10s %10s\n", "file", "events",
		"particles", "<E>/GeV", "sig(E)", "<zen>/deg", "sig(zen)")

	for _, path := range paths {
		events, particles, energy, zenith, err := runStats(path)
		if err != nil {
			g_error.External("Could not read %s: %s", path, err.Error())
		}

		fmt.Printf("%-24s %8d %10d %10.3g %10.3g %10.3g %10.3g\n",
			path, events, particles,
			stat.Mean(energy, nil), stat.StdDev(energy, nil),
			stat.Mean(zenith, nil), stat.StdDev(zenith, nil),
		)
	}
}

// runStats reads one CORSIKA file and collects the per-event primary
// energies (GeV) and zenith angles (degrees).
func runStats(
	path string,
) (events, particles int, energy, zenith []float64, err error) {
	f, err := showerio.Open(path)
	if err != nil { return 0, 0, nil, nil, err }
	defer f.Close()

	for {
		ev, err := f.NextEvent()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, 0, nil, nil, err
		}

		events++
		particles += len(ev.Particles)

		e, err := ev.Header.Float("total_energy")
		if err != nil { return 0, 0, nil, nil, err }
		zen, err := ev.Header.Float("zenith")
		if err != nil { return 0, 0, nil, nil, err }

		energy = append(energy, float64(e))
		zenith = append(zenith, float64(zen)*180/math.Pi)
	}

	return events, particles, energy, zenith, nil
}
