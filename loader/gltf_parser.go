package loader

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// glbMagic is the first four bytes of a binary glTF container ("glTF" in
// little-endian). GLB input is detected and rejected as unsupported.
const glbMagic uint32 = 0x46546C67

// gltfParserImpl is the implementation of the gltfParser interface.
type gltfParserImpl struct {
	baseDir  string
	document *gltfDocument
}

// gltfParser defines the interface for loading and parsing glTF files.
// It handles file I/O, JSON deserialization, document validation, buffer
// loading, and typed accessor reads. This is internal to the loader package.
//
// Errors are always one of the package's typed errors: IOError for file
// reads, FormatError for malformed documents, UnsupportedError for valid
// glTF the importer does not handle.
type gltfParser interface {
	// Parse loads and parses a glTF JSON file from the given path.
	// Binary glTF (.glb) input is rejected as unsupported.
	//
	// Parameters:
	//   - path: path to the glTF file
	//
	// Returns:
	//   - error: error if parsing fails
	Parse(path string) error

	// ParseBytes parses a glTF document from raw JSON bytes.
	// Use this when loading from embedded resources or in-memory documents.
	//
	// Parameters:
	//   - data: glTF JSON data
	//   - baseDir: directory for resolving relative buffer and image URIs
	//
	// Returns:
	//   - error: error if parsing fails
	ParseBytes(data []byte, baseDir string) error

	// Document returns the parsed glTF document.
	// Returns nil if Parse has not been called successfully.
	//
	// Returns:
	//   - *gltfDocument: the parsed document or nil
	Document() *gltfDocument

	// BaseDir returns the directory containing the loaded glTF file.
	// Used for resolving relative URIs to external resources.
	//
	// Returns:
	//   - string: the base directory path
	BaseDir() string

	// ReadVec2Accessor reads an accessor as vec2 float data.
	//
	// Parameters:
	//   - accessorIndex: the index of the accessor
	//
	// Returns:
	//   - [][2]float32: the vec2 data
	//   - error: error if reading fails
	ReadVec2Accessor(accessorIndex int) ([][2]float32, error)

	// ReadVec3Accessor reads an accessor as vec3 float data.
	//
	// Parameters:
	//   - accessorIndex: the index of the accessor
	//
	// Returns:
	//   - [][3]float32: the vec3 data
	//   - error: error if reading fails
	ReadVec3Accessor(accessorIndex int) ([][3]float32, error)

	// ReadIndicesAccessor reads an accessor as index data widened to uint32.
	// Signed components widen sign-correctly; UNSIGNED_INT data passes
	// through unchanged. FLOAT index data is unsupported.
	//
	// Parameters:
	//   - accessorIndex: the index of the accessor
	//
	// Returns:
	//   - []uint32: the index data (converted to uint32)
	//   - error: error if reading fails
	ReadIndicesAccessor(accessorIndex int) ([]uint32, error)
}

var _ gltfParser = &gltfParserImpl{}

// newGLTFParser creates a new glTF parser instance.
//
// Returns:
//   - gltfParser: a new parser instance
func newGLTFParser() gltfParser {
	return &gltfParserImpl{}
}

func (p *gltfParserImpl) Document() *gltfDocument {
	return p.document
}

func (p *gltfParserImpl) BaseDir() string {
	return p.baseDir
}

func (p *gltfParserImpl) Parse(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".glb" || (len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == glbMagic) {
		return unsupportedf("binary glTF (GLB) container")
	}

	return p.ParseBytes(data, filepath.Dir(path))
}

func (p *gltfParserImpl) ParseBytes(data []byte, baseDir string) error {
	p.baseDir = baseDir

	var doc gltfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		var formatErr *FormatError
		var unsupportedErr *UnsupportedError
		if errors.As(err, &formatErr) || errors.As(err, &unsupportedErr) {
			return err
		}
		return &FormatError{Detail: "malformed JSON", Err: err}
	}

	if doc.Asset == nil {
		return formatErrf("asset: missing required field %q", "asset")
	}
	if doc.Asset.Version == nil {
		return formatErrf("asset: missing required field %q", "version")
	}
	if !strings.HasPrefix(*doc.Asset.Version, "2.") {
		return unsupportedf("glTF version %q", *doc.Asset.Version)
	}

	if err := validateDocument(&doc); err != nil {
		return err
	}

	if err := p.loadBuffers(&doc); err != nil {
		return err
	}

	p.document = &doc
	return nil
}

// validateDocument checks required fields, closed feature support, and
// cross-reference bounds. A document that passes is safe to index without
// further range checks.
func validateDocument(doc *gltfDocument) error {
	if doc.Animations != nil {
		return unsupportedf("animations")
	}
	if doc.Skins != nil {
		return unsupportedf("skins")
	}
	if doc.Cameras != nil {
		return unsupportedf("cameras")
	}
	if len(doc.ExtensionsRequired) > 0 {
		return unsupportedf("required extension %q", doc.ExtensionsRequired[0])
	}

	for i := range doc.Accessors {
		acc := &doc.Accessors[i]
		if acc.ComponentType == nil {
			return formatErrf("accessor %d: missing required field %q", i, "componentType")
		}
		if acc.Count == nil {
			return formatErrf("accessor %d: missing required field %q", i, "count")
		}
		if acc.Type == nil {
			return formatErrf("accessor %d: missing required field %q", i, "type")
		}
		if acc.Sparse != nil {
			return unsupportedf("sparse accessor (accessor %d)", i)
		}
		if acc.BufferView != nil && (*acc.BufferView < 0 || *acc.BufferView >= len(doc.BufferViews)) {
			return formatErrf("accessor %d: bufferView index %d out of range (%d bufferViews)", i, *acc.BufferView, len(doc.BufferViews))
		}
	}

	for i := range doc.BufferViews {
		bv := &doc.BufferViews[i]
		if bv.Buffer == nil {
			return formatErrf("bufferView %d: missing required field %q", i, "buffer")
		}
		if bv.ByteLength == nil {
			return formatErrf("bufferView %d: missing required field %q", i, "byteLength")
		}
		if *bv.Buffer < 0 || *bv.Buffer >= len(doc.Buffers) {
			return formatErrf("bufferView %d: buffer index %d out of range (%d buffers)", i, *bv.Buffer, len(doc.Buffers))
		}
	}

	for mi := range doc.Meshes {
		mesh := &doc.Meshes[mi]
		for pi := range mesh.Primitives {
			prim := &mesh.Primitives[pi]
			if len(prim.Attributes) == 0 {
				return formatErrf("mesh %d primitive %d: missing required field %q", mi, pi, "attributes")
			}
			for semantic, accIdx := range prim.Attributes {
				if accIdx < 0 || accIdx >= len(doc.Accessors) {
					return formatErrf("mesh %d primitive %d: attribute %q accessor index %d out of range (%d accessors)", mi, pi, semantic, accIdx, len(doc.Accessors))
				}
			}
			if prim.Indices != nil && (*prim.Indices < 0 || *prim.Indices >= len(doc.Accessors)) {
				return formatErrf("mesh %d primitive %d: indices accessor index %d out of range (%d accessors)", mi, pi, *prim.Indices, len(doc.Accessors))
			}
			if prim.Material != nil && (*prim.Material < 0 || *prim.Material >= len(doc.Materials)) {
				return formatErrf("mesh %d primitive %d: material index %d out of range (%d materials)", mi, pi, *prim.Material, len(doc.Materials))
			}
		}
	}

	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		if node.Camera != nil {
			return unsupportedf("camera reference (node %d)", i)
		}
		if node.Skin != nil {
			return unsupportedf("skin reference (node %d)", i)
		}
		if node.Mesh != nil && (*node.Mesh < 0 || *node.Mesh >= len(doc.Meshes)) {
			return formatErrf("node %d: mesh index %d out of range (%d meshes)", i, *node.Mesh, len(doc.Meshes))
		}
		for _, child := range node.Children {
			if child < 0 || child >= len(doc.Nodes) {
				return formatErrf("node %d: child index %d out of range (%d nodes)", i, child, len(doc.Nodes))
			}
		}
	}

	for i := range doc.Scenes {
		for _, nodeIdx := range doc.Scenes[i].Nodes {
			if nodeIdx < 0 || nodeIdx >= len(doc.Nodes) {
				return formatErrf("scene %d: node index %d out of range (%d nodes)", i, nodeIdx, len(doc.Nodes))
			}
		}
	}
	if doc.Scene != nil && (*doc.Scene < 0 || *doc.Scene >= len(doc.Scenes)) {
		return formatErrf("scene index %d out of range (%d scenes)", *doc.Scene, len(doc.Scenes))
	}

	for i := range doc.Materials {
		if err := validateMaterial(doc, i); err != nil {
			return err
		}
	}

	for i := range doc.Textures {
		tex := &doc.Textures[i]
		if tex.Source != nil && (*tex.Source < 0 || *tex.Source >= len(doc.Images)) {
			return formatErrf("texture %d: source index %d out of range (%d images)", i, *tex.Source, len(doc.Images))
		}
		if tex.Sampler != nil && (*tex.Sampler < 0 || *tex.Sampler >= len(doc.Samplers)) {
			return formatErrf("texture %d: sampler index %d out of range (%d samplers)", i, *tex.Sampler, len(doc.Samplers))
		}
	}

	return nil
}

// validateMaterial checks one material's texture references.
func validateMaterial(doc *gltfDocument, matIndex int) error {
	mat := &doc.Materials[matIndex]

	type texSlot struct {
		slot string
		info *gltfTextureInfo
	}
	infos := []texSlot{
		{"normalTexture", mat.NormalTexture},
		{"occlusionTexture", mat.OcclusionTexture},
		{"emissiveTexture", mat.EmissiveTexture},
	}
	if pbr := mat.PbrMetallicRoughness; pbr != nil {
		infos = append(infos,
			texSlot{"baseColorTexture", pbr.BaseColorTexture},
			texSlot{"metallicRoughnessTexture", pbr.MetallicRoughnessTexture},
		)
	}

	for _, entry := range infos {
		if entry.info == nil {
			continue
		}
		if entry.info.Index == nil {
			return formatErrf("material %d: %s missing required field %q", matIndex, entry.slot, "index")
		}
		if *entry.info.Index < 0 || *entry.info.Index >= len(doc.Textures) {
			return formatErrf("material %d: %s index %d out of range (%d textures)", matIndex, entry.slot, *entry.info.Index, len(doc.Textures))
		}
		if entry.info.Scale != nil && entry.info.Strength != nil {
			return formatErrf("material %d: %s supplies both %q and %q", matIndex, entry.slot, "scale", "strength")
		}
	}

	return nil
}

// loadBuffers loads all buffer data from external file URIs. Embedded data:
// URIs, remote URIs, and URI-less buffers are unsupported.
func (p *gltfParserImpl) loadBuffers(doc *gltfDocument) error {
	for i := range doc.Buffers {
		buf := &doc.Buffers[i]

		if buf.URI == nil {
			return unsupportedf("buffer %d without URI (embedded binary chunk)", i)
		}

		data, err := p.loadBufferURI(*buf.URI)
		if err != nil {
			return fmt.Errorf("buffer %d: %w", i, err)
		}
		buf.Data = data

		if buf.ByteLength > 0 && len(buf.Data) < buf.ByteLength {
			return formatErrf("buffer %d: file %q holds %d bytes, expected at least %d", i, *buf.URI, len(buf.Data), buf.ByteLength)
		}
	}

	return nil
}

// loadBufferURI loads buffer data from an external file URI. The URI is
// percent-decoded and resolved relative to the document's base directory.
func (p *gltfParserImpl) loadBufferURI(uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "data:") {
		return nil, unsupportedf("embedded data URI buffer")
	}
	if strings.Contains(uri, "://") {
		return nil, unsupportedf("remote buffer URI %q", uri)
	}

	decoded, err := url.PathUnescape(uri)
	if err != nil {
		return nil, formatErrf("invalid percent-encoding in buffer URI %q", uri)
	}

	fullPath := filepath.Join(p.baseDir, filepath.FromSlash(decoded))
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, &IOError{Path: fullPath, Err: err}
	}

	return data, nil
}
