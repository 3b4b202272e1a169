package loader

import (
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/scenery/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMaterialDefaults(t *testing.T) {
	p := parseTestDoc(t, `{"asset":{"version":"2.0"},"materials":[{}]}`, nil)
	ext := newGLTFMaterialExtractor(p, false)

	mat, err := ext.ExtractMaterial(0)
	require.NoError(t, err)

	assert.Equal(t, "material_0", mat.Name)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, mat.BaseColor)
	assert.Equal(t, -1, mat.BaseColorTexture)
	assert.Equal(t, float32(1), mat.Metallic)
	assert.Equal(t, -1, mat.MetallicTexture)
	assert.Equal(t, float32(1), mat.Roughness)
	assert.Equal(t, -1, mat.RoughnessTexture)
	assert.Equal(t, -1, mat.NormalTexture)
	assert.Equal(t, float32(1), mat.NormalScale)
	assert.Equal(t, -1, mat.OcclusionTexture)
	assert.Equal(t, float32(1), mat.OcclusionStrength)
	assert.Equal(t, -1, mat.EmissiveTexture)
	assert.Equal(t, [3]float32{0, 0, 0}, mat.EmissiveFactor)
	assert.Equal(t, scene.AlphaModeOpaque, mat.AlphaMode)
	assert.Equal(t, float32(0.5), mat.AlphaCutoff)
	assert.False(t, mat.DoubleSided)
}

func TestExtractMaterialAlphaModes(t *testing.T) {
	doc := `{"asset":{"version":"2.0"},"materials":[
		{"alphaMode":"MASK","alphaCutoff":0.25},
		{"alphaMode":"BLEND"},
		{"alphaMode":"OPAQUE"}
	]}`
	p := parseTestDoc(t, doc, nil)
	ext := newGLTFMaterialExtractor(p, false)

	mask, err := ext.ExtractMaterial(0)
	require.NoError(t, err)
	assert.Equal(t, scene.AlphaModeCutoff, mask.AlphaMode)
	assert.Equal(t, float32(0.25), mask.AlphaCutoff)

	blend, err := ext.ExtractMaterial(1)
	require.NoError(t, err)
	assert.Equal(t, scene.AlphaModeBlend, blend.AlphaMode)

	opaque, err := ext.ExtractMaterial(2)
	require.NoError(t, err)
	assert.Equal(t, scene.AlphaModeOpaque, opaque.AlphaMode)
}

func TestExtractMaterialFactors(t *testing.T) {
	doc := `{"asset":{"version":"2.0"},"materials":[{
		"name":"painted",
		"pbrMetallicRoughness":{
			"baseColorFactor":[0.1,0.2,0.3,0.4],
			"metallicFactor":0.2,
			"roughnessFactor":0.4
		},
		"emissiveFactor":[0.5,0.6,0.7],
		"doubleSided":true
	}]}`
	p := parseTestDoc(t, doc, nil)

	mat, err := newGLTFMaterialExtractor(p, false).ExtractMaterial(0)
	require.NoError(t, err)

	assert.Equal(t, "painted", mat.Name)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.4}, mat.BaseColor)
	assert.Equal(t, float32(0.2), mat.Metallic)
	assert.Equal(t, float32(0.4), mat.Roughness)
	assert.Equal(t, [3]float32{0.5, 0.6, 0.7}, mat.EmissiveFactor)
	assert.True(t, mat.DoubleSided)
}

func TestExtractMaterialMetallicRoughnessSharesImage(t *testing.T) {
	doc := `{
		"asset":{"version":"2.0"},
		"images":[{"uri":"base.png"},{"uri":"mr.png"}],
		"textures":[{"source":0},{"source":1}],
		"materials":[{"pbrMetallicRoughness":{
			"baseColorTexture":{"index":0},
			"metallicRoughnessTexture":{"index":1}
		}}]
	}`
	p := parseTestDoc(t, doc, nil)

	mat, err := newGLTFMaterialExtractor(p, false).ExtractMaterial(0)
	require.NoError(t, err)

	assert.Equal(t, 0, mat.BaseColorTexture)
	assert.Equal(t, 1, mat.MetallicTexture)
	assert.Equal(t, 1, mat.RoughnessTexture)
	assert.Equal(t, mat.MetallicTexture, mat.RoughnessTexture)
}

func TestExtractMaterialTextureWithoutSource(t *testing.T) {
	doc := `{
		"asset":{"version":"2.0"},
		"textures":[{}],
		"materials":[{"pbrMetallicRoughness":{"baseColorTexture":{"index":0}}}]
	}`
	p := parseTestDoc(t, doc, nil)

	mat, err := newGLTFMaterialExtractor(p, false).ExtractMaterial(0)
	require.NoError(t, err)
	assert.Equal(t, -1, mat.BaseColorTexture)
}

func TestExtractMaterialScalarSlots(t *testing.T) {
	doc := `{
		"asset":{"version":"2.0"},
		"images":[{"uri":"n.png"}],
		"textures":[{"source":0}],
		"materials":[{
			"normalTexture":{"index":0,"scale":2.0},
			"occlusionTexture":{"index":0,"strength":0.5},
			"emissiveTexture":{"index":0}
		}]
	}`
	p := parseTestDoc(t, doc, nil)

	mat, err := newGLTFMaterialExtractor(p, false).ExtractMaterial(0)
	require.NoError(t, err)

	assert.Equal(t, 0, mat.NormalTexture)
	assert.Equal(t, float32(2), mat.NormalScale)
	assert.Equal(t, 0, mat.OcclusionTexture)
	assert.Equal(t, float32(0.5), mat.OcclusionStrength)
	assert.Equal(t, 0, mat.EmissiveTexture)
}

func TestExtractAllMaterialsEmpty(t *testing.T) {
	p := parseTestDoc(t, `{"asset":{"version":"2.0"}}`, nil)

	materials, err := newGLTFMaterialExtractor(p, false).ExtractAllMaterials()
	require.NoError(t, err)
	assert.Nil(t, materials)
}

func TestExtractAllImagesPathsAndFormats(t *testing.T) {
	dir := t.TempDir()
	doc := `{
		"asset":{"version":"2.0"},
		"images":[
			{"uri":"textures/albedo%20map.png","mimeType":"image/png"},
			{"name":"bump","uri":"bump.jpg","mimeType":"image/jpeg"}
		]
	}`
	p := newGLTFParser()
	require.NoError(t, p.ParseBytes([]byte(doc), dir))

	images, err := newGLTFMaterialExtractor(p, false).ExtractAllImages()
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.Equal(t, filepath.Join(dir, "textures", "albedo map.png"), images[0].Path)
	assert.Equal(t, "albedo map.png", images[0].Name)
	assert.Equal(t, scene.ImageFormatPNG, images[0].Format)
	assert.Nil(t, images[0].Data)

	assert.Equal(t, "bump", images[1].Name)
	assert.Equal(t, scene.ImageFormatJPEG, images[1].Format)
}

func TestExtractAllImagesRejectsNonFileSources(t *testing.T) {
	cases := []struct {
		name        string
		doc         string
		unsupported bool
	}{
		{"data URI", `{"asset":{"version":"2.0"},"images":[{"uri":"data:image/png;base64,AAAA"}]}`, true},
		{"remote URI", `{"asset":{"version":"2.0"},"images":[{"uri":"https://example.com/t.png"}]}`, true},
		{"bufferView", `{"asset":{"version":"2.0"},"images":[{"bufferView":0}]}`, true},
		{"missing uri", `{"asset":{"version":"2.0"},"images":[{}]}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseTestDoc(t, tc.doc, nil)
			_, err := newGLTFMaterialExtractor(p, false).ExtractAllImages()
			require.Error(t, err)

			if tc.unsupported {
				var ue *UnsupportedError
				assert.ErrorAs(t, err, &ue)
			} else {
				var fe *FormatError
				assert.ErrorAs(t, err, &fe)
			}
		})
	}
}

func TestExtractAllImagesLoadsAndSniffsData(t *testing.T) {
	dir := t.TempDir()
	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	writeTestFile(t, dir, "tex.png", pngBytes)

	// No mimeType declared; the format must come from the file signature.
	doc := `{"asset":{"version":"2.0"},"images":[{"uri":"tex.png"}]}`
	p := newGLTFParser()
	require.NoError(t, p.ParseBytes([]byte(doc), dir))

	images, err := newGLTFMaterialExtractor(p, true).ExtractAllImages()
	require.NoError(t, err)
	require.Len(t, images, 1)

	assert.Equal(t, pngBytes, images[0].Data)
	assert.Equal(t, scene.ImageFormatPNG, images[0].Format)
}

func TestExtractAllImagesMissingFile(t *testing.T) {
	doc := `{"asset":{"version":"2.0"},"images":[{"uri":"absent.png"}]}`
	p := parseTestDoc(t, doc, nil)

	_, err := newGLTFMaterialExtractor(p, true).ExtractAllImages()
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Contains(t, ioErr.Path, "absent.png")
}
