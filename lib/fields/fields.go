/*package fields implements the declarative field layouts that map the
named quantities of a CORSIKA sub-block onto byte offsets within a block.

A sub-block is described by an ordered list of Field values, each naming
one quantity and giving the 1-based position of its first 4-byte element,
following the FORTRAN-style numbering used in the CORSIKA user's guide.
The list is turned into an immutable Layout once, at table-construction
time, and the Layout then decodes any number of blocks into Records. The
per-version field lists themselves live in lib/subblocks; this package
only provides the mechanism.
*/
package fields

import (
	"fmt"
	"math"

	"github.com/maxnoe/gocorsika/lib/blockio"
)

// Kind is the element type of a field. Almost everything CORSIKA writes
// is a 4-byte float, including counters and dates, so F32 is the
// default; U32 and S4 cover the handful of exceptions.
type Kind int

const (
	// F32 is a 4-byte IEEE-754 float in the producing machine's order.
	F32 Kind = iota
	// U32 is a 4-byte unsigned integer.
	U32
	// S4 is a fixed 4-byte ASCII string, used for sub-block markers.
	S4
)

func (k Kind) String() string {
	switch k {
	case F32: return "f32"
	case U32: return "u32"
	case S4: return "s4"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field describes one named quantity of a sub-block. Position is the
// 1-based index of the field's first 4-byte element within the block. A
// nil Shape means a scalar; otherwise the field occupies
// product(Shape) consecutive elements starting at Position. Element
// ranges of different fields must not overlap, but gaps between them
// are fine and simply stay unaddressed.
type Field struct {
	Position int
	Name     string
	Kind     Kind
	Shape    []int
}

// F returns a scalar float field. This is by far the most common case,
// so it gets the shortest name; the sub-block tables are built almost
// entirely out of it.
func F(position int, name string) Field {
	return Field{Position: position, Name: name}
}

// FArr returns a float field spanning the given shape, e.g.
// FArr(14, "random_seeds", 10, 3) for ten 3-element seed triples.
func FArr(position int, name string, shape ...int) Field {
	return Field{Position: position, Name: name, Shape: shape}
}

// Str returns a 4-byte ASCII string field.
func Str(position int, name string) Field {
	return Field{Position: position, Name: name, Kind: S4}
}

// U returns a scalar unsigned integer field.
func U(position int, name string) Field {
	return Field{Position: position, Name: name, Kind: U32}
}

type layoutField struct {
	Field
	offset, count int
}

// Layout is the immutable offset table derived from an ordered field
// list. It is built once per schema and decodes one block at a time
// into a Record.
type Layout struct {
	fields []layoutField
	index  map[string]int
}

// NewLayout computes the offset table for an ordered field list. Each
// field starts at byte offset (Position-1)*4 and spans product(Shape)
// elements (1 for scalars). Field order is preserved for consumers that
// want positional access. Overlaps between fields are the table
// author's responsibility and are not checked; malformed single fields
// (bad positions, empty or repeated names, extents past the end of the
// block) are errors.
func NewLayout(fs []Field) (*Layout, error) {
	l := &Layout{
		fields: make([]layoutField, 0, len(fs)),
		index:  map[string]int{},
	}

	for _, f := range fs {
		if f.Name == "" {
			return nil, fmt.Errorf("The field at position %d has an "+
				"empty name.", f.Position)
		} else if _, ok := l.index[f.Name]; ok {
			return nil, fmt.Errorf("The field name '%s' is used more "+
				"than once.", f.Name)
		} else if f.Position < 1 {
			return nil, fmt.Errorf("The field '%s' has position %d, but "+
				"positions are 1-based element indices and must be "+
				"positive.", f.Name, f.Position)
		}

		count := 1
		for _, dim := range f.Shape {
			if dim < 1 {
				return nil, fmt.Errorf("The field '%s' has shape %d, "+
					"which contains the invalid dimension %d.",
					f.Name, f.Shape, dim)
			}
			count *= dim
		}

		if f.Kind != F32 && count != 1 {
			return nil, fmt.Errorf("The field '%s' has kind %s and "+
				"shape %d, but only float fields may have a shape.",
				f.Name, f.Kind, f.Shape)
		}

		offset := (f.Position - 1) * 4
		if offset+4*count > blockio.BlockSizeBytes {
			return nil, fmt.Errorf("The field '%s' spans elements %d to "+
				"%d, but a block only holds %d elements.", f.Name,
				f.Position, f.Position+count-1, blockio.BlockSize)
		}

		l.index[f.Name] = len(l.fields)
		l.fields = append(l.fields, layoutField{f, offset, count})
	}

	return l, nil
}

// MustLayout is NewLayout for the hand-maintained sub-block tables,
// where a malformed field list is a programming error rather than a
// runtime condition.
func MustLayout(fs []Field) *Layout {
	l, err := NewLayout(fs)
	if err != nil { panic(err.Error()) }
	return l
}

// Len returns the number of fields in the layout.
func (l *Layout) Len() int { return len(l.fields) }

// Names returns the field names in their table order.
func (l *Layout) Names() []string {
	names := make([]string, len(l.fields))
	for i := range l.fields {
		names[i] = l.fields[i].Name
	}
	return names
}

// Field returns the descriptor of the named field and whether it exists.
func (l *Layout) Field(name string) (Field, bool) {
	i, ok := l.index[name]
	if !ok { return Field{}, false }
	return l.fields[i].Field, true
}

// Record holds the decoded fields of one block. Scalar floats are
// stored as float32, integers as uint32, strings as string, and array
// fields as flat []float32 slices whose shape can be recovered from the
// originating Layout.
type Record struct {
	layout *Layout
	values []interface{}
}

// Decode interprets one block according to the layout. Every field is
// read in the byte order of the host, matching the order CORSIKA wrote
// it in; files moved between machines of different endianness are not
// supported, just as they are not by CORSIKA itself.
func (l *Layout) Decode(block []byte) (*Record, error) {
	if len(block) != blockio.BlockSizeBytes {
		return nil, fmt.Errorf("Decode was given %d bytes, but blocks "+
			"are always %d bytes.", len(block), blockio.BlockSizeBytes)
	}

	order := blockio.SystemByteOrder()
	values := make([]interface{}, len(l.fields))
	for i := range l.fields {
		f := &l.fields[i]
		switch {
		case f.Kind == S4:
			values[i] = string(block[f.offset : f.offset+4])
		case f.Kind == U32:
			values[i] = order.Uint32(block[f.offset:])
		case f.count == 1:
			values[i] = math.Float32frombits(order.Uint32(block[f.offset:]))
		default:
			x := make([]float32, f.count)
			for j := range x {
				x[j] = math.Float32frombits(order.Uint32(block[f.offset+4*j:]))
			}
			values[i] = x
		}
	}

	return &Record{l, values}, nil
}

// Layout returns the layout the record was decoded with.
func (r *Record) Layout() *Layout { return r.layout }

// Get returns the value of the named field as an interface. See Record
// for the concrete types used.
func (r *Record) Get(name string) (interface{}, error) {
	i, ok := r.layout.index[name]
	if !ok {
		return nil, fmt.Errorf("'%s' is not a field of this sub-block. "+
			"Its fields are %s.", name, r.layout.Names())
	}
	return r.values[i], nil
}

// Float returns the value of a scalar float field.
func (r *Record) Float(name string) (float32, error) {
	v, err := r.Get(name)
	if err != nil { return 0, err }

	x, ok := v.(float32)
	if !ok {
		return 0, fmt.Errorf("The field '%s' is not a scalar float, "+
			"it has type %T.", name, v)
	}
	return x, nil
}

// Floats returns the flat values of a float array field.
func (r *Record) Floats(name string) ([]float32, error) {
	v, err := r.Get(name)
	if err != nil { return nil, err }

	x, ok := v.([]float32)
	if !ok {
		return nil, fmt.Errorf("The field '%s' is not a float array, "+
			"it has type %T.", name, v)
	}
	return x, nil
}

// Uint returns the value of an unsigned integer field.
func (r *Record) Uint(name string) (uint32, error) {
	v, err := r.Get(name)
	if err != nil { return 0, err }

	x, ok := v.(uint32)
	if !ok {
		return 0, fmt.Errorf("The field '%s' is not an unsigned "+
			"integer, it has type %T.", name, v)
	}
	return x, nil
}

// Str returns the value of a 4-byte ASCII string field.
func (r *Record) Str(name string) (string, error) {
	v, err := r.Get(name)
	if err != nil { return "", err }

	x, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("The field '%s' is not a string, it has "+
			"type %T.", name, v)
	}
	return x, nil
}
