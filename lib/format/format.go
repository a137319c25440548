/*package format handles the miniature formatting language the gocorsika
tools use to select CORSIKA run numbers and the files they were written to.

CORSIKA names its output files after the run number, e.g. DAT000001,
DAT000002, and a single analysis usually spans many runs, some of which
may be missing or known to be corrupted. Runs are therefore selected with
a sequence format: a series of n tokens separated by "+" or "-", where
each token is either a number or two numbers separated by "..". E.g.:

  100
  1..100
  1..10 + 100
  1..100 - 63 - 10..20

These strings build up sequences of numbers by adding and removing
individual numbers and contiguous ranges. For example, runs 1, 2, 3, 15,
16, 17 could be written as 1..17 - 4..13. This is useful for skipping
corrupted runs or selecting a subset of a production.

All spaces around "-", "+", and "," symbols are ignored.
*/
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	g_error "github.com/maxnoe/gocorsika/lib/error"
)

const (
	// Any expanded sequences which would have more than BigNumber elements
	// are assumed to be bugs.
	BigNumber = 1 << 20
)

// ExpandSequenceFormat expands a sequence format string into a sorted
// sequence of integers.
func ExpandSequenceFormat(format string) ([]int, error) {
	// Parse and error-check the format string.
	tok, err := tokeniseSequenceFormat(format)
	if err != nil { return nil, err }
	adds, subs, err := addsSubsSequenceFormat(tok)
	if err != nil { return nil, err }

	// Add numbers to the sequence.
	m := map[int]int{ }
	for i := range adds {
		ns := parseSequenceFormatToken(adds[i])
		for _, n := range ns {
			if _, ok := m[n]; ok {
				return nil, fmt.Errorf("The number %d is added more than once.", n)
			}
			m[n] = n
		}
	}

	// Remove numbers from the sequence.
	for i := range subs {
		ns := parseSequenceFormatToken(subs[i])
		for _, n := range ns {
			if _, ok := m[n]; !ok {
				return nil, fmt.Errorf("The number %d is removed more times than it was inserted.", n)
			}
			delete(m, n)
		}
	}

	if len(m) > BigNumber {
		return nil, fmt.Errorf("This sequence would have %d elements, which is almost certianly a bug.", len(m))
	}

	// Convert to a sorted array of integers.
	out := []int{ }
	for n := range m { out = append(out, n) }
	sort.Ints(out)

	return out, nil
}

// ExpandRunFormat expands a file name pattern over the runs selected by a
// sequence format string. The pattern is a printf format with a single
// integer verb for the run number, e.g.
//
//   ExpandRunFormat("data/DAT%06d", "1..3 - 2")
//
// returns ["data/DAT000001", "data/DAT000003"].
func ExpandRunFormat(pattern, seqFormat string) ([]string, error) {
	if n := strings.Count(pattern, "%") - 2*strings.Count(pattern, "%%"); n != 1 {
		return nil, fmt.Errorf("The file pattern '%s' should contain "+
			"exactly one formatting verb for the run number, but contains "+
			"%d.", pattern, n)
	}

	runs, err := ExpandSequenceFormat(seqFormat)
	if err != nil {
		return nil, fmt.Errorf("The run selection '%s' is not a valid "+
			"sequence format. %s", seqFormat, err.Error())
	}

	out := make([]string, len(runs))
	for i := range runs {
		out[i] = fmt.Sprintf(pattern, runs[i])
	}
	return out, nil
}

// tokeniseSequenceFormat splits a sequence format string into its number,
// range, "+", and "-" tokens.
func tokeniseSequenceFormat(format string) ([]string, error) {
	// Make sure all operators are separated by spaces.
	formatClean := strings.ReplaceAll(format, "+", " + ")
	formatClean = strings.ReplaceAll(formatClean, "-", " - ")

	// Tokenize and remove empty tokens.
	tokRaw := strings.Split(formatClean, " ")
	tok := []string{ }
	for i := range tokRaw {
		tokRaw[i] = strings.Trim(tokRaw[i], " ")
		if len(tokRaw[i]) > 0 {
			tok = append(tok, tokRaw[i])
		}
	}

	if len(tok) == 0 {
		return nil, fmt.Errorf("The format string is empty.")
	}
	return tok, nil
}

func addsSubsSequenceFormat(tok []string) (adds, subs []string, err error) {
	if len(tok) == 0 {
		return nil, nil, fmt.Errorf("Format string is empty")
	}

	// Handle the case where the starting "+" is dropped.
	adds, subs = []string{}, []string{}
	var start int
	if tok[0] == "+" || tok[0] == "-" {
		start = 0
	} else {
		if err := isSequenceFormatToken(tok[0]); err != nil {
			return nil, nil, fmt.Errorf(
				"Element number %d, '%s', cannot be parsed because %s",
				1, tok[0], err.Error(),
			)
		}

		adds = append(adds, tok[0])
		start = 1
	}

	for i := start; i < len(tok); i += 2 {
		if tok[i] != "-" && tok[i] != "+" {
			return nil, nil, fmt.Errorf(
				"Element number %d, '%s', should be a '-' or '+', but isn't.",
				i+1, tok[i])
		}

		if i + 1 >= len(tok) {
			return nil, nil, fmt.Errorf(
				"The format string ends in a trailing '%s'", tok[i],
			)
		}

		if err := isSequenceFormatToken(tok[i+1]); err != nil {
			return nil, nil, fmt.Errorf(
				"Element number %d, '%s', cannot be parsed because %s",
				i+2, tok[i+1], err.Error(),
			)
		}

		if tok[i] == "+" {
			adds = append(adds, tok[i+1])
		} else {
			subs = append(subs, tok[i+1])
		}
	}

	return adds, subs, nil
}

// isSequenceFormatToken returns a nil error if tok is a valid token for
// a sequence format and an error describing the problem otherwise. The
// error message assumes it is printed after a trailing "because".
func isSequenceFormatToken(tok string) error {
	if len(tok) == 0 {
		return fmt.Errorf("the format string is empty.")
	}

	bounds := strings.Split(tok, "..")

	switch len(bounds) {
	case 1:
		_, err := strconv.Atoi(bounds[0])
		if err != nil {
			return fmt.Errorf("'%s' is not an integer.", bounds[0])
		}
		return nil
	case 2:
		start, err1 := strconv.Atoi(bounds[0])
		if err1 != nil {
			return fmt.Errorf("'%s' is not an integer.", bounds[0])
		}
		end, err2 := strconv.Atoi(bounds[1])
		if err2 != nil {
			return fmt.Errorf("'%s' is not an integer.", bounds[1])
		}
		if end < start {
			return fmt.Errorf("lower bound %d is larger than upper bound %d.",
				start, end)
		}

		return nil
	}
	return fmt.Errorf("it has more than one '..'.")
}

// parseSequenceFormatToken parses a single token in a sequence format
// string and returns the corresponding array of numbers. This function
// assumes that the tests in isSequenceFormatToken have already been run
// and thus does no error checking. This makes sense to do because the
// calling function has already removed location information from these
// tokens, so the error message would be less informative.
func parseSequenceFormatToken(tok string) []int {
	bounds := strings.Split(tok, "..")

	switch len(bounds) {
	case 1:
		n, _ := strconv.Atoi(tok)
		return []int{ n }
	case 2:
		start, _ := strconv.Atoi(bounds[0])
		end, _ := strconv.Atoi(bounds[1])
		out := []int{ }
		for n := start; n <= end; n++ {
			out = append(out, n)
		}

		return out
	}

	g_error.Internal(
		"Invalid sequence format token, '%s', passed isSequenceFormatToken()",
		tok,
	)
	return nil
}
