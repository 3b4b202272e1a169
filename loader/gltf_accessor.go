// gltf_accessor.go implements the typed accessor reads declared on the
// gltfParser interface. An accessor is resolved to a byte window of its
// buffer, bounds-checked, and decoded little-endian into Go values.
package loader

import (
	"bytes"
	"encoding/binary"
)

// resolveAccessorWindow resolves an accessor to the byte window it reads
// from. The window starts at the sum of the bufferView's and the accessor's
// byte offsets and spans the bufferView's byte length. Interleaved data
// (a stride other than zero or the packed element size) is unsupported.
func (p *gltfParserImpl) resolveAccessorWindow(accessorIndex int) ([]byte, *gltfAccessor, error) {
	doc := p.document
	if doc == nil {
		return nil, nil, formatErrf("no document loaded")
	}
	if accessorIndex < 0 || accessorIndex >= len(doc.Accessors) {
		return nil, nil, formatErrf("accessor index %d out of range (%d accessors)", accessorIndex, len(doc.Accessors))
	}

	acc := &doc.Accessors[accessorIndex]
	if acc.BufferView == nil {
		return nil, nil, unsupportedf("accessor %d without bufferView", accessorIndex)
	}

	bv := &doc.BufferViews[*acc.BufferView]
	buf := &doc.Buffers[*bv.Buffer]

	elementSize := acc.elementSize()
	if stride := bv.stride(); stride != 0 && stride != elementSize {
		return nil, nil, unsupportedf("interleaved bufferView stride %d (accessor %d element size %d)", stride, accessorIndex, elementSize)
	}

	start := bv.ByteOffset + acc.ByteOffset
	end := start + *bv.ByteLength
	if start < 0 || end < start || end > len(buf.Data) {
		return nil, nil, formatErrf("accessor %d: window [%d, %d) exceeds buffer %d length %d", accessorIndex, start, end, *bv.Buffer, len(buf.Data))
	}

	if need := *acc.Count * elementSize; need > end-start {
		return nil, nil, formatErrf("accessor %d: %d elements of %d bytes exceed window length %d", accessorIndex, *acc.Count, elementSize, end-start)
	}

	return buf.Data[start:end], acc, nil
}

// --- Typed Accessor Reads ---

func (p *gltfParserImpl) ReadVec2Accessor(accessorIndex int) ([][2]float32, error) {
	window, acc, err := p.resolveAccessorWindow(accessorIndex)
	if err != nil {
		return nil, err
	}
	if *acc.ComponentType != gltfComponentTypeFloat {
		return nil, unsupportedf("non-float attribute data (accessor %d componentType %d)", accessorIndex, *acc.ComponentType)
	}
	if *acc.Type != gltfAccessorTypeVec2 {
		return nil, formatErrf("accessor %d: expected VEC2, found %s", accessorIndex, *acc.Type)
	}

	result := make([][2]float32, *acc.Count)
	r := bytes.NewReader(window)
	for i := range result {
		if err := binary.Read(r, binary.LittleEndian, &result[i]); err != nil {
			return nil, formatErrf("accessor %d: short read at element %d", accessorIndex, i)
		}
	}

	return result, nil
}

func (p *gltfParserImpl) ReadVec3Accessor(accessorIndex int) ([][3]float32, error) {
	window, acc, err := p.resolveAccessorWindow(accessorIndex)
	if err != nil {
		return nil, err
	}
	if *acc.ComponentType != gltfComponentTypeFloat {
		return nil, unsupportedf("non-float attribute data (accessor %d componentType %d)", accessorIndex, *acc.ComponentType)
	}
	if *acc.Type != gltfAccessorTypeVec3 {
		return nil, formatErrf("accessor %d: expected VEC3, found %s", accessorIndex, *acc.Type)
	}

	result := make([][3]float32, *acc.Count)
	r := bytes.NewReader(window)
	for i := range result {
		if err := binary.Read(r, binary.LittleEndian, &result[i]); err != nil {
			return nil, formatErrf("accessor %d: short read at element %d", accessorIndex, i)
		}
	}

	return result, nil
}

func (p *gltfParserImpl) ReadIndicesAccessor(accessorIndex int) ([]uint32, error) {
	window, acc, err := p.resolveAccessorWindow(accessorIndex)
	if err != nil {
		return nil, err
	}
	if *acc.Type != gltfAccessorTypeScalar {
		return nil, formatErrf("accessor %d: index data must be SCALAR, found %s", accessorIndex, *acc.Type)
	}

	count := *acc.Count
	result := make([]uint32, count)
	r := bytes.NewReader(window)

	switch *acc.ComponentType {
	case gltfComponentTypeByte:
		for i := 0; i < count; i++ {
			var v int8
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, formatErrf("accessor %d: short read at element %d", accessorIndex, i)
			}
			result[i] = uint32(v)
		}
	case gltfComponentTypeUnsignedByte:
		for i := 0; i < count; i++ {
			var v uint8
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, formatErrf("accessor %d: short read at element %d", accessorIndex, i)
			}
			result[i] = uint32(v)
		}
	case gltfComponentTypeShort:
		for i := 0; i < count; i++ {
			var v int16
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, formatErrf("accessor %d: short read at element %d", accessorIndex, i)
			}
			result[i] = uint32(v)
		}
	case gltfComponentTypeUnsignedShort:
		for i := 0; i < count; i++ {
			var v uint16
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, formatErrf("accessor %d: short read at element %d", accessorIndex, i)
			}
			result[i] = uint32(v)
		}
	case gltfComponentTypeUnsignedInt:
		// Already the output width; decode the whole run in one read.
		if err := binary.Read(r, binary.LittleEndian, &result); err != nil {
			return nil, formatErrf("accessor %d: short read of %d uint32 indices", accessorIndex, count)
		}
	default:
		return nil, unsupportedf("floating-point index data (accessor %d)", accessorIndex)
	}

	return result, nil
}
