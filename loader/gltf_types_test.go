package loader

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentTypeDecodesKnownCodes(t *testing.T) {
	codes := map[string]gltfComponentType{
		"5120": gltfComponentTypeByte,
		"5121": gltfComponentTypeUnsignedByte,
		"5122": gltfComponentTypeShort,
		"5123": gltfComponentTypeUnsignedShort,
		"5125": gltfComponentTypeUnsignedInt,
		"5126": gltfComponentTypeFloat,
	}
	for raw, want := range codes {
		var ct gltfComponentType
		require.NoError(t, json.Unmarshal([]byte(raw), &ct))
		assert.Equal(t, want, ct)
	}
}

func TestComponentTypeRejectsUnknownCode(t *testing.T) {
	// 5124 (INT) sits inside the numeric range but is not part of glTF 2.0.
	var ct gltfComponentType
	err := json.Unmarshal([]byte("5124"), &ct)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Detail, "componentType")
	assert.Contains(t, fe.Detail, "5124")
}

func TestComponentTypeSize(t *testing.T) {
	assert.Equal(t, 1, gltfComponentTypeByte.size())
	assert.Equal(t, 1, gltfComponentTypeUnsignedByte.size())
	assert.Equal(t, 2, gltfComponentTypeShort.size())
	assert.Equal(t, 2, gltfComponentTypeUnsignedShort.size())
	assert.Equal(t, 4, gltfComponentTypeUnsignedInt.size())
	assert.Equal(t, 4, gltfComponentTypeFloat.size())
}

func TestAccessorTypeRejectsUnknownValue(t *testing.T) {
	var at gltfAccessorType
	err := json.Unmarshal([]byte(`"VEC5"`), &at)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Detail, "VEC5")
}

func TestAccessorTypeComponentCount(t *testing.T) {
	assert.Equal(t, 1, gltfAccessorTypeScalar.componentCount())
	assert.Equal(t, 2, gltfAccessorTypeVec2.componentCount())
	assert.Equal(t, 3, gltfAccessorTypeVec3.componentCount())
	assert.Equal(t, 4, gltfAccessorTypeVec4.componentCount())
	assert.Equal(t, 4, gltfAccessorTypeMat2.componentCount())
	assert.Equal(t, 9, gltfAccessorTypeMat3.componentCount())
	assert.Equal(t, 16, gltfAccessorTypeMat4.componentCount())
}

func TestPrimitiveModeRange(t *testing.T) {
	var m gltfPrimitiveMode
	require.NoError(t, json.Unmarshal([]byte("0"), &m))
	assert.Equal(t, gltfPrimitiveModePoints, m)
	require.NoError(t, json.Unmarshal([]byte("6"), &m))
	assert.Equal(t, gltfPrimitiveModeTriangleFan, m)

	for _, raw := range []string{"7", "-1"} {
		var fe *FormatError
		err := json.Unmarshal([]byte(raw), &m)
		require.ErrorAs(t, err, &fe, "code %s", raw)
		assert.Contains(t, fe.Detail, "primitive mode")
	}
}

func TestTargetRejectsUnknownCode(t *testing.T) {
	var tg gltfTarget
	require.NoError(t, json.Unmarshal([]byte("34962"), &tg))
	require.NoError(t, json.Unmarshal([]byte("34963"), &tg))

	var fe *FormatError
	err := json.Unmarshal([]byte("34964"), &tg)
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Detail, "34964")
}

func TestFilterAndWrapCodes(t *testing.T) {
	var f gltfFilter
	for _, raw := range []string{"9728", "9729", "9984", "9985", "9986", "9987"} {
		require.NoError(t, json.Unmarshal([]byte(raw), &f), "filter %s", raw)
	}
	var fe *FormatError
	require.ErrorAs(t, json.Unmarshal([]byte("9730"), &f), &fe)

	var w gltfWrap
	for _, raw := range []string{"33071", "33648", "10497"} {
		require.NoError(t, json.Unmarshal([]byte(raw), &w), "wrap %s", raw)
	}
	require.ErrorAs(t, json.Unmarshal([]byte("33072"), &w), &fe)
}

func TestAlphaModeRejectsUnknownValue(t *testing.T) {
	var m gltfAlphaMode
	require.NoError(t, json.Unmarshal([]byte(`"MASK"`), &m))
	assert.Equal(t, gltfAlphaModeMask, m)

	var fe *FormatError
	err := json.Unmarshal([]byte(`"TRANSLUCENT"`), &m)
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Detail, "TRANSLUCENT")
}

func TestNodeTRSDefaults(t *testing.T) {
	n := gltfNode{}
	assert.Equal(t, [3]float32{0, 0, 0}, n.translation())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, n.rotation())
	assert.Equal(t, [3]float32{1, 1, 1}, n.scale())
}

func TestPrimitiveModeDefault(t *testing.T) {
	p := gltfPrimitive{}
	assert.Equal(t, gltfPrimitiveModeTriangles, p.mode())
}

func TestMaterialDefaults(t *testing.T) {
	m := gltfMaterial{}
	assert.Equal(t, gltfAlphaModeOpaque, m.alphaMode())
	assert.Equal(t, float32(0.5), m.alphaCutoff())
	assert.Equal(t, [3]float32{0, 0, 0}, m.emissiveFactor())
}

func TestPbrDefaultsOnNilReceiver(t *testing.T) {
	var p *gltfPbrMetallicRoughness
	assert.Equal(t, [4]float32{1, 1, 1, 1}, p.baseColorFactor())
	assert.Equal(t, float32(1), p.metallicFactor())
	assert.Equal(t, float32(1), p.roughnessFactor())
}

func TestTextureInfoFactor(t *testing.T) {
	scale := float32(0.25)
	strength := float32(0.75)

	assert.Equal(t, float32(1), (&gltfTextureInfo{}).factor())
	assert.Equal(t, scale, (&gltfTextureInfo{Scale: &scale}).factor())
	assert.Equal(t, strength, (&gltfTextureInfo{Strength: &strength}).factor())
}

func TestSamplerWrapDefaults(t *testing.T) {
	s := gltfSampler{}
	assert.Equal(t, gltfWrapRepeat, s.wrapS())
	assert.Equal(t, gltfWrapRepeat, s.wrapT())

	clamp := gltfWrapClampToEdge
	s = gltfSampler{WrapS: &clamp}
	assert.Equal(t, gltfWrapClampToEdge, s.wrapS())
	assert.Equal(t, gltfWrapRepeat, s.wrapT())
}

func TestBufferViewStrideDefault(t *testing.T) {
	v := gltfBufferView{}
	assert.Equal(t, 0, v.stride())

	stride := 12
	v = gltfBufferView{ByteStride: &stride}
	assert.Equal(t, 12, v.stride())
}
