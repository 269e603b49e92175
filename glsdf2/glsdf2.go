// Package glsdf2 exposes pointed arch regions as float32 signed distance
// functions that can be evaluated on the CPU or emitted as GLSL source.
package glsdf2

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/soypat/glgl/math/ms2"
)

// Shader2D can create SDF shader source code for a 2D shape and evaluate it on the CPU.
type Shader2D interface {
	// AppendShaderName appends the name of the GL shader function
	// to the buffer and returns the result. It should be unique to that shader.
	AppendShaderName(b []byte) []byte
	// AppendShaderBody appends the body of the shader function to the
	// buffer and returns the result.
	AppendShaderBody(b []byte) []byte
	Bounds() ms2.Box
	// Evaluate writes the signed distance of each position to dist.
	Evaluate(pos []ms2.Vec, dist []float32, userData any) error
}

// WriteShader writes the GL code of a single shader to the writer. scratch is an auxiliary buffer to prevent allocations.
func WriteShader(w io.Writer, s Shader2D, scratch []byte) (int, error) {
	if s == nil {
		return 0, errors.New("nil shader")
	}
	scratch = scratch[:0]
	scratch = append(scratch, "float "...)
	scratch = s.AppendShaderName(scratch)
	scratch = append(scratch, "(vec2 p) {\n"...)
	scratch = s.AppendShaderBody(scratch)
	scratch = append(scratch, "\n}\n\n"...)
	return w.Write(scratch)
}

// fappend appends v with 6 decimal digits and trailing zeroes trimmed.
// neg and decimal replace the minus sign and decimal point, which lets
// the same routine build identifier-safe shader names.
func fappend(b []byte, v float32, neg, decimal byte) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, float64(v), 'f', 6, 32)
	idx := bytes.IndexByte(b[start:], '.')
	if decimal != '.' && idx >= 0 {
		b[start+idx] = decimal
	}
	if b[start] == '-' {
		b[start] = neg
	}
	// Finally trim zeroes.
	end := len(b)
	for i := len(b) - 1; idx >= 0 && i > idx+start && b[i] == '0'; i-- {
		end--
	}
	return b[:end]
}
