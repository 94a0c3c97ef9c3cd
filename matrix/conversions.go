// SPDX-License-Identifier: MIT

// Package matrix: converters between Matrix4 and flat external forms.
//
// Every form uses the same flat column-major order as the in-memory buffer:
//   - Array / Slice: the 16 cells as float32 values (GPU uniform upload).
//   - Binary: 16 little-endian IEEE-754 float32 values, 64 bytes.
//   - YAML: a flow sequence of 16 numbers, e.g. [1, 0, 0, 0, 0, 1, ...].
//
// Decoders are checked entry points: they enforce the shape and reject
// non-finite cells, exactly like FromSlice with default options.
package matrix

import (
	"encoding/binary"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Array returns a copy of the 16 cells in flat order.
func (m Matrix4) Array() [Size]float32 {
	return m.data
}

// Slice returns a freshly allocated slice of the 16 cells in flat order.
func (m Matrix4) Slice() []float32 {
	out := make([]float32, Size)
	copy(out, m.data[:])

	return out
}

// AppendBinary appends the 64-byte little-endian encoding of m to b.
// It never fails; the error is part of the encoding.BinaryAppender shape.
func (m Matrix4) AppendBinary(b []byte) ([]byte, error) {
	for _, v := range m.data {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}

	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m Matrix4) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(make([]byte, 0, ByteSize))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be exactly
// 64 bytes and every decoded cell must be finite.
func (m *Matrix4) UnmarshalBinary(data []byte) error {
	if err := validateLen(len(data), ByteSize); err != nil {
		return matrixErrorf(opUnmarshalBin, err)
	}

	var cells [Size]float32
	for i := range cells {
		cells[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	if err := validateFinite(cells[:]); err != nil {
		return matrixErrorf(opUnmarshalBin, err)
	}
	m.data = cells

	return nil
}

// MarshalYAML implements yaml.Marshaler. The matrix is written as a single
// flow sequence so a document stays one line per matrix.
func (m Matrix4) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range m.data {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: formatYAMLFloat(v),
		})
	}

	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Matrix4) UnmarshalYAML(value *yaml.Node) error {
	var cells []float32
	if err := value.Decode(&cells); err != nil {
		return matrixErrorf(opUnmarshalYAML, err)
	}

	decoded, err := FromSlice(cells)
	if err != nil {
		return matrixErrorf(opUnmarshalYAML, err)
	}
	*m = decoded

	return nil
}

// formatYAMLFloat renders v with the shortest float32 round-trip form, using
// the YAML 1.2 spellings for the non-finite values.
func formatYAMLFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}

	return strconv.FormatFloat(f, 'g', -1, 32)
}
