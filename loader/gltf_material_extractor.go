package loader

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/scenery/common"
	"github.com/Carmen-Shannon/scenery/scene"

	"github.com/h2non/filetype"
)

// gltfMaterialExtractorImpl is the implementation of the gltfMaterialExtractor interface.
type gltfMaterialExtractorImpl struct {
	parser        gltfParser
	loadImageData bool
}

// gltfMaterialExtractor defines the interface for extracting material and
// image data from a parsed glTF document into scene-ready Material and Image
// structs. Texture references resolve through the texture table down to image
// indices; image files themselves are referenced by path and only read when
// image data loading is enabled.
type gltfMaterialExtractor interface {
	// ExtractMaterial extracts a single material by index.
	//
	// Parameters:
	//   - materialIndex: the index of the material in the document
	//
	// Returns:
	//   - *scene.Material: the extracted material
	//   - error: error if extraction fails
	ExtractMaterial(materialIndex int) (*scene.Material, error)

	// ExtractAllMaterials extracts all materials from the document.
	//
	// Returns:
	//   - []scene.Material: all extracted materials, or nil if the document has none
	//   - error: error if extraction fails
	ExtractAllMaterials() ([]scene.Material, error)

	// ExtractAllImages extracts all image references from the document.
	// Only external file URIs are supported; paths are percent-decoded and
	// joined to the document's base directory.
	//
	// Returns:
	//   - []scene.Image: all image references, or nil if the document has none
	//   - error: error if extraction fails
	ExtractAllImages() ([]scene.Image, error)
}

var _ gltfMaterialExtractor = &gltfMaterialExtractorImpl{}

// newGLTFMaterialExtractor creates a new material extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//   - loadImageData: when true, referenced image files are read into memory
//
// Returns:
//   - gltfMaterialExtractor: the material extractor
func newGLTFMaterialExtractor(parser gltfParser, loadImageData bool) gltfMaterialExtractor {
	return &gltfMaterialExtractorImpl{parser: parser, loadImageData: loadImageData}
}

func (e *gltfMaterialExtractorImpl) ExtractMaterial(materialIndex int) (*scene.Material, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, formatErrf("no document loaded")
	}
	if materialIndex < 0 || materialIndex >= len(doc.Materials) {
		return nil, formatErrf("material index %d out of range (%d materials)", materialIndex, len(doc.Materials))
	}

	mat := &doc.Materials[materialIndex]
	pbr := mat.PbrMetallicRoughness

	result := &scene.Material{
		Name:              common.Coalesce(mat.Name, fmt.Sprintf("material_%d", materialIndex)),
		BaseColor:         pbr.baseColorFactor(),
		BaseColorTexture:  -1,
		Metallic:          pbr.metallicFactor(),
		MetallicTexture:   -1,
		Roughness:         pbr.roughnessFactor(),
		RoughnessTexture:  -1,
		NormalTexture:     -1,
		NormalScale:       1.0,
		OcclusionTexture:  -1,
		OcclusionStrength: 1.0,
		EmissiveTexture:   -1,
		EmissiveFactor:    mat.emissiveFactor(),
		AlphaCutoff:       mat.alphaCutoff(),
		DoubleSided:       mat.DoubleSided,
	}

	switch mat.alphaMode() {
	case gltfAlphaModeMask:
		result.AlphaMode = scene.AlphaModeCutoff
	case gltfAlphaModeBlend:
		result.AlphaMode = scene.AlphaModeBlend
	default:
		result.AlphaMode = scene.AlphaModeOpaque
	}

	if pbr != nil {
		result.BaseColorTexture = e.resolveTextureImage(pbr.BaseColorTexture)

		// The metallic-roughness model packs both channels into one image,
		// so the metallic and roughness slots resolve to the same index.
		mrImage := e.resolveTextureImage(pbr.MetallicRoughnessTexture)
		result.MetallicTexture = mrImage
		result.RoughnessTexture = mrImage
	}

	if mat.NormalTexture != nil {
		result.NormalTexture = e.resolveTextureImage(mat.NormalTexture)
		result.NormalScale = mat.NormalTexture.factor()
	}
	if mat.OcclusionTexture != nil {
		result.OcclusionTexture = e.resolveTextureImage(mat.OcclusionTexture)
		result.OcclusionStrength = mat.OcclusionTexture.factor()
	}
	if mat.EmissiveTexture != nil {
		result.EmissiveTexture = e.resolveTextureImage(mat.EmissiveTexture)
	}

	return result, nil
}

func (e *gltfMaterialExtractorImpl) ExtractAllMaterials() ([]scene.Material, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, formatErrf("no document loaded")
	}
	if len(doc.Materials) == 0 {
		return nil, nil
	}

	materials := make([]scene.Material, len(doc.Materials))
	for i := range doc.Materials {
		mat, err := e.ExtractMaterial(i)
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		materials[i] = *mat
	}

	return materials, nil
}

func (e *gltfMaterialExtractorImpl) ExtractAllImages() ([]scene.Image, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, formatErrf("no document loaded")
	}
	if len(doc.Images) == 0 {
		return nil, nil
	}

	images := make([]scene.Image, len(doc.Images))
	for i := range doc.Images {
		img, err := e.extractImage(i)
		if err != nil {
			return nil, err
		}
		images[i] = *img
	}

	return images, nil
}

// resolveTextureImage resolves a texture reference down to its image index,
// or -1 when the slot is empty or the texture has no image source. Texture
// indices are bounds-checked during document validation.
func (e *gltfMaterialExtractorImpl) resolveTextureImage(info *gltfTextureInfo) int {
	if info == nil {
		return -1
	}

	tex := &e.parser.Document().Textures[*info.Index]
	if tex.Source == nil {
		return -1
	}
	return *tex.Source
}

// extractImage extracts a single image reference. Images embedded in buffer
// views or data URIs are unsupported; only external file URIs resolve.
func (e *gltfMaterialExtractorImpl) extractImage(imageIndex int) (*scene.Image, error) {
	doc := e.parser.Document()
	img := &doc.Images[imageIndex]

	if img.BufferView != nil {
		return nil, unsupportedf("image %d sourced from a bufferView", imageIndex)
	}
	if img.URI == nil {
		return nil, formatErrf("image %d: missing required field %q", imageIndex, "uri")
	}

	path, err := e.resolveImagePath(imageIndex, *img.URI)
	if err != nil {
		return nil, err
	}

	result := &scene.Image{
		Name:   common.Coalesce(img.Name, filepath.Base(path)),
		Path:   path,
		Format: imageFormatFromMime(img.MimeType),
	}

	if e.loadImageData {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
		result.Data = data

		// Sniff the format from the file signature when the document did
		// not declare a usable MIME type.
		if result.Format == scene.ImageFormatUnknown {
			if kind, err := filetype.Match(data); err == nil {
				result.Format = imageFormatFromMime(kind.MIME.Value)
			}
		}
	}

	return result, nil
}

// resolveImagePath percent-decodes an image URI and joins it to the
// document's base directory.
func (e *gltfMaterialExtractorImpl) resolveImagePath(imageIndex int, uri string) (string, error) {
	if strings.HasPrefix(uri, "data:") {
		return "", unsupportedf("embedded data URI image (image %d)", imageIndex)
	}
	if strings.Contains(uri, "://") {
		return "", unsupportedf("remote image URI %q (image %d)", uri, imageIndex)
	}

	decoded, err := url.PathUnescape(uri)
	if err != nil {
		return "", formatErrf("image %d: invalid percent-encoding in URI %q", imageIndex, uri)
	}

	return filepath.Join(e.parser.BaseDir(), filepath.FromSlash(decoded)), nil
}

// imageFormatFromMime maps a MIME type to a scene image format.
func imageFormatFromMime(mime string) scene.ImageFormat {
	switch strings.ToLower(mime) {
	case "image/png":
		return scene.ImageFormatPNG
	case "image/jpeg", "image/jpg":
		return scene.ImageFormatJPEG
	case "image/bmp":
		return scene.ImageFormatBMP
	default:
		return scene.ImageFormatUnknown
	}
}
