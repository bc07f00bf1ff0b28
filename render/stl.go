package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen/internal/d3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// CreateSTL renders r into a binary STL file at path.
func CreateSTL(path string, r Renderer) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fp)
	if _, err = WriteBinarySTL(w, model); err == nil {
		err = w.Flush()
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteBinarySTL writes model triangles to a writer in STL file format.
// Facet normals are computed from the triangle winding.
func WriteBinarySTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, errors.New("empty triangle slice")
	}
	nt := int64(len(model)) // int64 so the comparison holds on 32 bit machines.
	if nt > math.MaxUint32 {
		return 0, errors.New("amount of triangles in model exceeds STL design limits")
	}
	header := stlHeader{Count: uint32(nt)}

	var buf [stlHeaderSize]byte
	header.put(buf[:])
	n, err := w.Write(buf[:])
	if err != nil {
		return n, err
	}
	var d stlTriangle
	for _, t := range model {
		d.Normal = d3.SafeUnit(t.Normal(), ms3.Vec{})
		d.Vertices = t
		d.put(buf[:stlTriangleSize])
		ngot, err := w.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadBinarySTL reads a binary STL file. Triangles whose stored normal
// disagrees with their winding are kept and reported with
// ErrNormalMismatch once the whole file is read.
func ReadBinarySTL(r io.Reader) (output []ms3.Triangle, readErr error) {
	var hbuf [stlHeaderSize]byte
	if _, err := io.ReadFull(r, hbuf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, fmt.Errorf("STL header read failed: %w", err)
	}
	var header stlHeader
	header.get(hbuf[:])
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf        [stlTriangleSize]byte
		d          stlTriangle
		mismatches int
	)
	output = make([]ms3.Triangle, 0, header.Count)
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, header.Count, err)
		}
		d.get(buf[:])
		if err := d.validate(); errors.Is(err, ErrNormalMismatch) {
			mismatches++
		} else if err != nil {
			return nil, fmt.Errorf("STL triangle %d: %w", i, err)
		}
		output = append(output, d.Vertices)
	}
	if mismatches > 0 {
		readErr = fmt.Errorf("%d triangles: %w", mismatches, ErrNormalMismatch)
	}
	return output, readErr
}

// ErrNormalMismatch is returned when a stored facet normal does not match
// the normal computed from its vertices.
var ErrNormalMismatch = errors.New("STL facet normal mismatch")

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32 // Number of triangles
}

func (h stlHeader) put(b []byte) {
	_ = b[83] // early bounds check
	clear(b[:80])
	binary.LittleEndian.PutUint32(b[80:], h.Count)
}

func (h *stlHeader) get(b []byte) {
	_ = b[83]
	h.Count = binary.LittleEndian.Uint32(b[80:])
}

// stlTriangle is a facet as stored in a binary STL file. The attribute
// byte count is always written as zero.
type stlTriangle struct {
	Normal   ms3.Vec
	Vertices ms3.Triangle
}

func (t stlTriangle) put(b []byte) {
	_ = b[49]
	putVec(b, t.Normal)
	for i, v := range t.Vertices {
		putVec(b[12+12*i:], v)
	}
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	_ = b[49]
	t.Normal = getVec(b)
	for i := range t.Vertices {
		t.Vertices[i] = getVec(b[12+12*i:])
	}
}

func putVec(b []byte, v ms3.Vec) {
	_ = b[11]
	binary.LittleEndian.PutUint32(b, math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	_ = b[11]
	return ms3.Vec{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b)),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func badVec(v ms3.Vec) bool {
	return math32.IsNaN(v.X) || math32.IsInf(v.X, 0) ||
		math32.IsNaN(v.Y) || math32.IsInf(v.Y, 0) ||
		math32.IsNaN(v.Z) || math32.IsInf(v.Z, 0)
}

func (t stlTriangle) validate() error {
	const normTol = 5e-2
	if badVec(t.Vertices[0]) || badVec(t.Vertices[1]) || badVec(t.Vertices[2]) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	if t.Vertices.IsDegenerate(1e-12) {
		// Degenerate facets carry no usable normal to compare against.
		return nil
	}
	if badVec(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	calc := ms3.Unit(t.Vertices.Normal())
	if !ms3.EqualElem(calc, t.Normal, normTol) {
		return ErrNormalMismatch
	}
	return nil
}
