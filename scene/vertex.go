package scene

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Vertex is the fixed-layout representation of a single mesh vertex.
// The field order matches the layout consumers receive across the export
// boundary. Size: 64 bytes (16 float32 fields, no padding required).
type Vertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	TexCoord [2]float32 // offset 12: UV texture coordinate (8 bytes)
	Color    [4]float32 // offset 20: per-vertex RGBA color, fixed opaque white by the assembler (16 bytes)
	Normal   [3]float32 // offset 36: vertex normal for lighting (12 bytes)
	Tangent  [4]float32 // offset 48: tangent vector (xyz) + handedness (w), fixed zero by the assembler (16 bytes)
}

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the Vertex into its 64-byte little-endian image. Float
// fields are written as their exact bit patterns, so the result doubles as a
// structural identity key: two vertices marshal to the same bytes only when
// every field matches bit for bit, and distinct NaN encodings stay distinct.
//
// Returns:
//   - []byte: 64-byte little-endian buffer.
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.TexCoord[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(v.Color[2]))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(v.Color[3]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(v.Normal[0]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(v.Normal[1]))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(v.Normal[2]))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(v.Tangent[0]))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(v.Tangent[1]))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(v.Tangent[2]))
	binary.LittleEndian.PutUint32(buf[60:64], math.Float32bits(v.Tangent[3]))
	return buf
}
