// gltf_types.go contains glTF 2.0 spec data structures for JSON deserialization.
// These types map directly to the glTF 2.0 JSON schema and are internal to the loader package.
// Enumerated fields decode through closed code tables validated at the parse
// boundary, and required fields use pointers so their absence is detectable.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package loader

import (
	"encoding/json"
	"fmt"
)

// --- Enumerated Code Tables ---

// gltfComponentType is the data type of accessor components.
// 5120=BYTE, 5121=UNSIGNED_BYTE, 5122=SHORT, 5123=UNSIGNED_SHORT,
// 5125=UNSIGNED_INT, 5126=FLOAT. The set is closed: any other code fails
// deserialization with a FormatError naming the code.
type gltfComponentType int

const (
	gltfComponentTypeByte          gltfComponentType = 5120
	gltfComponentTypeUnsignedByte  gltfComponentType = 5121
	gltfComponentTypeShort         gltfComponentType = 5122
	gltfComponentTypeUnsignedShort gltfComponentType = 5123
	gltfComponentTypeUnsignedInt   gltfComponentType = 5125
	gltfComponentTypeFloat         gltfComponentType = 5126
)

func (c *gltfComponentType) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return &FormatError{Detail: fmt.Sprintf("componentType: expected numeric code, got %s", data)}
	}
	switch v := gltfComponentType(code); v {
	case gltfComponentTypeByte, gltfComponentTypeUnsignedByte,
		gltfComponentTypeShort, gltfComponentTypeUnsignedShort,
		gltfComponentTypeUnsignedInt, gltfComponentTypeFloat:
		*c = v
		return nil
	default:
		return formatErrf("componentType: unrecognized code %d", code)
	}
}

// size returns the byte width of one component.
func (c gltfComponentType) size() int {
	switch c {
	case gltfComponentTypeByte, gltfComponentTypeUnsignedByte:
		return 1
	case gltfComponentTypeShort, gltfComponentTypeUnsignedShort:
		return 2
	default:
		return 4
	}
}

// gltfAccessorType is the element shape of an accessor.
type gltfAccessorType string

const (
	gltfAccessorTypeScalar gltfAccessorType = "SCALAR"
	gltfAccessorTypeVec2   gltfAccessorType = "VEC2"
	gltfAccessorTypeVec3   gltfAccessorType = "VEC3"
	gltfAccessorTypeVec4   gltfAccessorType = "VEC4"
	gltfAccessorTypeMat2   gltfAccessorType = "MAT2"
	gltfAccessorTypeMat3   gltfAccessorType = "MAT3"
	gltfAccessorTypeMat4   gltfAccessorType = "MAT4"
)

func (t *gltfAccessorType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &FormatError{Detail: fmt.Sprintf("accessor type: expected string, got %s", data)}
	}
	switch v := gltfAccessorType(s); v {
	case gltfAccessorTypeScalar, gltfAccessorTypeVec2, gltfAccessorTypeVec3,
		gltfAccessorTypeVec4, gltfAccessorTypeMat2, gltfAccessorTypeMat3,
		gltfAccessorTypeMat4:
		*t = v
		return nil
	default:
		return formatErrf("accessor type: unrecognized value %q", s)
	}
}

// componentCount returns the number of components per element.
func (t gltfAccessorType) componentCount() int {
	switch t {
	case gltfAccessorTypeScalar:
		return 1
	case gltfAccessorTypeVec2:
		return 2
	case gltfAccessorTypeVec3:
		return 3
	case gltfAccessorTypeVec4, gltfAccessorTypeMat2:
		return 4
	case gltfAccessorTypeMat3:
		return 9
	default:
		return 16
	}
}

// gltfPrimitiveMode is the primitive topology.
// 0=POINTS, 1=LINES, 2=LINE_LOOP, 3=LINE_STRIP, 4=TRIANGLES (default),
// 5=TRIANGLE_STRIP, 6=TRIANGLE_FAN.
type gltfPrimitiveMode int

const (
	gltfPrimitiveModePoints        gltfPrimitiveMode = 0
	gltfPrimitiveModeLines         gltfPrimitiveMode = 1
	gltfPrimitiveModeLineLoop      gltfPrimitiveMode = 2
	gltfPrimitiveModeLineStrip     gltfPrimitiveMode = 3
	gltfPrimitiveModeTriangles     gltfPrimitiveMode = 4
	gltfPrimitiveModeTriangleStrip gltfPrimitiveMode = 5
	gltfPrimitiveModeTriangleFan   gltfPrimitiveMode = 6
)

func (m *gltfPrimitiveMode) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return &FormatError{Detail: fmt.Sprintf("primitive mode: expected numeric code, got %s", data)}
	}
	if code < int(gltfPrimitiveModePoints) || code > int(gltfPrimitiveModeTriangleFan) {
		return formatErrf("primitive mode: unrecognized code %d", code)
	}
	*m = gltfPrimitiveMode(code)
	return nil
}

// gltfTarget is the intended GPU buffer type of a bufferView.
// 34962=ARRAY_BUFFER, 34963=ELEMENT_ARRAY_BUFFER.
type gltfTarget int

const (
	gltfTargetArrayBuffer        gltfTarget = 34962
	gltfTargetElementArrayBuffer gltfTarget = 34963
)

func (t *gltfTarget) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return &FormatError{Detail: fmt.Sprintf("bufferView target: expected numeric code, got %s", data)}
	}
	switch v := gltfTarget(code); v {
	case gltfTargetArrayBuffer, gltfTargetElementArrayBuffer:
		*t = v
		return nil
	default:
		return formatErrf("bufferView target: unrecognized code %d", code)
	}
}

// gltfFilter is a texture magnification/minification filter.
// 9728=NEAREST, 9729=LINEAR, 9984..9987=mipmap variants.
type gltfFilter int

const (
	gltfFilterNearest              gltfFilter = 9728
	gltfFilterLinear               gltfFilter = 9729
	gltfFilterNearestMipmapNearest gltfFilter = 9984
	gltfFilterLinearMipmapNearest  gltfFilter = 9985
	gltfFilterNearestMipmapLinear  gltfFilter = 9986
	gltfFilterLinearMipmapLinear   gltfFilter = 9987
)

func (f *gltfFilter) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return &FormatError{Detail: fmt.Sprintf("sampler filter: expected numeric code, got %s", data)}
	}
	switch v := gltfFilter(code); v {
	case gltfFilterNearest, gltfFilterLinear,
		gltfFilterNearestMipmapNearest, gltfFilterLinearMipmapNearest,
		gltfFilterNearestMipmapLinear, gltfFilterLinearMipmapLinear:
		*f = v
		return nil
	default:
		return formatErrf("sampler filter: unrecognized code %d", code)
	}
}

// gltfWrap is a texture wrapping mode.
// 33071=CLAMP_TO_EDGE, 33648=MIRRORED_REPEAT, 10497=REPEAT (default).
type gltfWrap int

const (
	gltfWrapClampToEdge    gltfWrap = 33071
	gltfWrapMirroredRepeat gltfWrap = 33648
	gltfWrapRepeat         gltfWrap = 10497
)

func (w *gltfWrap) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return &FormatError{Detail: fmt.Sprintf("sampler wrap: expected numeric code, got %s", data)}
	}
	switch v := gltfWrap(code); v {
	case gltfWrapClampToEdge, gltfWrapMirroredRepeat, gltfWrapRepeat:
		*w = v
		return nil
	default:
		return formatErrf("sampler wrap: unrecognized code %d", code)
	}
}

// gltfAlphaMode is a material's alpha rendering mode.
type gltfAlphaMode string

const (
	gltfAlphaModeOpaque gltfAlphaMode = "OPAQUE"
	gltfAlphaModeMask   gltfAlphaMode = "MASK"
	gltfAlphaModeBlend  gltfAlphaMode = "BLEND"
)

func (m *gltfAlphaMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &FormatError{Detail: fmt.Sprintf("alphaMode: expected string, got %s", data)}
	}
	switch v := gltfAlphaMode(s); v {
	case gltfAlphaModeOpaque, gltfAlphaModeMask, gltfAlphaModeBlend:
		*m = v
		return nil
	default:
		return formatErrf("alphaMode: unrecognized value %q", s)
	}
}

// --- glTF Root Structure ---

// gltfDocument represents the root of a glTF JSON document. It is built once
// per import, read-only afterwards, and discarded once the scene has been
// assembled.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-gltf
type gltfDocument struct {
	// Asset contains metadata about the glTF asset.
	Asset *gltfAsset `json:"asset,omitempty"`

	// Scene is the index of the default scene.
	Scene *int `json:"scene,omitempty"`

	// Scenes is an array of scenes.
	Scenes []gltfScene `json:"scenes,omitempty"`

	// Nodes is an array of nodes (transform hierarchy).
	Nodes []gltfNode `json:"nodes,omitempty"`

	// Meshes is an array of meshes.
	Meshes []gltfMesh `json:"meshes,omitempty"`

	// Accessors define how to interpret buffer data.
	Accessors []gltfAccessor `json:"accessors,omitempty"`

	// BufferViews define portions of buffers.
	BufferViews []gltfBufferView `json:"bufferViews,omitempty"`

	// Buffers are raw binary data containers.
	Buffers []gltfBuffer `json:"buffers,omitempty"`

	// Materials is an array of materials.
	Materials []gltfMaterial `json:"materials,omitempty"`

	// Textures is an array of textures.
	Textures []gltfTexture `json:"textures,omitempty"`

	// Images is an array of images.
	Images []gltfImage `json:"images,omitempty"`

	// Samplers define texture sampling parameters.
	Samplers []gltfSampler `json:"samplers,omitempty"`

	// Animations, Skins and Cameras are captured only so their presence can
	// be reported as unsupported; their contents are never decoded.
	Animations json.RawMessage `json:"animations,omitempty"`
	Skins      json.RawMessage `json:"skins,omitempty"`
	Cameras    json.RawMessage `json:"cameras,omitempty"`

	// ExtensionsRequired lists extensions the asset cannot be loaded
	// without; any entry makes the document unsupported.
	ExtensionsRequired []string `json:"extensionsRequired,omitempty"`
}

// --- Asset Metadata ---

// gltfAsset contains metadata about the glTF asset. Optional fields are
// pointers so an absent field is distinguishable from an empty string.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-asset
type gltfAsset struct {
	// Version is the glTF version (required).
	Version *string `json:"version,omitempty"`

	// MinVersion is the minimum glTF version required.
	MinVersion *string `json:"minVersion,omitempty"`

	// Generator is the tool that generated this asset.
	Generator *string `json:"generator,omitempty"`

	// Copyright information.
	Copyright *string `json:"copyright,omitempty"`
}

// --- Scene Graph ---

// gltfScene is a set of visual objects to render.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-scene
type gltfScene struct {
	// Name is an optional name for this scene.
	Name string `json:"name,omitempty"`

	// Nodes are the indices of root nodes in this scene.
	Nodes []int `json:"nodes,omitempty"`
}

// gltfNode is a node in the node hierarchy. The transform is either the
// explicit column-major Matrix or the TRS components, each independently
// defaulted (identity, (0,0,0), (0,0,0,1), (1,1,1)).
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-node
type gltfNode struct {
	// Name is an optional name for this node.
	Name string `json:"name,omitempty"`

	// Children are indices of child nodes.
	Children []int `json:"children,omitempty"`

	// Mesh is the index of the mesh in this node.
	Mesh *int `json:"mesh,omitempty"`

	// Camera is the index of the camera in this node (unsupported).
	Camera *int `json:"camera,omitempty"`

	// Skin is the index of the skin for this node (unsupported).
	Skin *int `json:"skin,omitempty"`

	// Matrix is a 4x4 transformation matrix (column-major).
	Matrix *[16]float32 `json:"matrix,omitempty"`

	// Translation is the node's translation (x, y, z).
	Translation *[3]float32 `json:"translation,omitempty"`

	// Rotation is the node's rotation as a quaternion (x, y, z, w).
	Rotation *[4]float32 `json:"rotation,omitempty"`

	// Scale is the node's scale (x, y, z).
	Scale *[3]float32 `json:"scale,omitempty"`
}

// translation returns the node's translation, defaulted to (0, 0, 0).
func (n *gltfNode) translation() [3]float32 {
	if n.Translation != nil {
		return *n.Translation
	}
	return [3]float32{0, 0, 0}
}

// rotation returns the node's rotation, defaulted to the identity quaternion.
func (n *gltfNode) rotation() [4]float32 {
	if n.Rotation != nil {
		return *n.Rotation
	}
	return [4]float32{0, 0, 0, 1}
}

// scale returns the node's scale, defaulted to (1, 1, 1).
func (n *gltfNode) scale() [3]float32 {
	if n.Scale != nil {
		return *n.Scale
	}
	return [3]float32{1, 1, 1}
}

// --- Mesh Data ---

// gltfMesh is a set of primitives to be rendered.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-mesh
type gltfMesh struct {
	// Name is an optional name for this mesh.
	Name string `json:"name,omitempty"`

	// Primitives defines the geometry to render.
	Primitives []gltfPrimitive `json:"primitives,omitempty"`
}

// gltfPrimitive defines geometry for rendering.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-mesh-primitive
type gltfPrimitive struct {
	// Attributes is a map of attribute semantic to accessor index (required).
	// Semantics are matched case-insensitively; unrecognized semantics are
	// ignored for forward compatibility.
	Attributes map[string]int `json:"attributes,omitempty"`

	// Indices is the accessor index for the index buffer.
	Indices *int `json:"indices,omitempty"`

	// Material is the material index.
	Material *int `json:"material,omitempty"`

	// Mode is the primitive topology (default TRIANGLES).
	Mode *gltfPrimitiveMode `json:"mode,omitempty"`
}

// mode returns the primitive topology, defaulted to TRIANGLES.
func (p *gltfPrimitive) mode() gltfPrimitiveMode {
	if p.Mode != nil {
		return *p.Mode
	}
	return gltfPrimitiveModeTriangles
}

// --- Buffer Data ---

// gltfAccessor defines how to interpret buffer data.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-accessor
type gltfAccessor struct {
	// Name is an optional name.
	Name string `json:"name,omitempty"`

	// BufferView is the index of the bufferView.
	BufferView *int `json:"bufferView,omitempty"`

	// ByteOffset is the offset within the bufferView (default 0).
	ByteOffset int `json:"byteOffset,omitempty"`

	// ComponentType is the data type of components (required).
	ComponentType *gltfComponentType `json:"componentType,omitempty"`

	// Normalized indicates if integer data should be normalized (default false).
	Normalized bool `json:"normalized,omitempty"`

	// Count is the number of elements (required).
	Count *int `json:"count,omitempty"`

	// Type is the element shape (required).
	Type *gltfAccessorType `json:"type,omitempty"`

	// Max is the maximum value of each component (informational).
	Max []float32 `json:"max,omitempty"`

	// Min is the minimum value of each component (informational).
	Min []float32 `json:"min,omitempty"`

	// Sparse is captured only so its presence can be reported as
	// unsupported; its contents are never decoded.
	Sparse json.RawMessage `json:"sparse,omitempty"`
}

// elementSize returns the packed byte width of one element.
func (a *gltfAccessor) elementSize() int {
	return a.ComponentType.size() * a.Type.componentCount()
}

// gltfBufferView represents a subset of a buffer.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-bufferview
type gltfBufferView struct {
	// Name is an optional name.
	Name string `json:"name,omitempty"`

	// Buffer is the index of the buffer (required).
	Buffer *int `json:"buffer,omitempty"`

	// ByteOffset is the offset into the buffer (default 0).
	ByteOffset int `json:"byteOffset,omitempty"`

	// ByteLength is the length of the bufferView (required).
	ByteLength *int `json:"byteLength,omitempty"`

	// ByteStride is the stride for interleaved data (optional).
	ByteStride *int `json:"byteStride,omitempty"`

	// Target is the intended GPU buffer type.
	Target *gltfTarget `json:"target,omitempty"`
}

// stride returns the declared byte stride, or 0 for tightly packed data.
func (v *gltfBufferView) stride() int {
	if v.ByteStride != nil {
		return *v.ByteStride
	}
	return 0
}

// gltfBuffer represents binary data.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-buffer
type gltfBuffer struct {
	// Name is an optional name.
	Name string `json:"name,omitempty"`

	// URI is the buffer data's location. Only external file URIs are
	// supported; data: URIs and URI-less (embedded) buffers are rejected.
	URI *string `json:"uri,omitempty"`

	// ByteLength is the length of the buffer.
	ByteLength int `json:"byteLength,omitempty"`

	// Data holds the loaded binary data (not part of JSON, populated during load).
	Data []byte `json:"-"`
}

// --- Materials and Textures ---

// gltfMaterial defines the material appearance of a primitive.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-material
type gltfMaterial struct {
	// Name is an optional name.
	Name string `json:"name,omitempty"`

	// PbrMetallicRoughness is the PBR metallic-roughness model.
	PbrMetallicRoughness *gltfPbrMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`

	// NormalTexture is the normal map.
	NormalTexture *gltfTextureInfo `json:"normalTexture,omitempty"`

	// OcclusionTexture is the occlusion map.
	OcclusionTexture *gltfTextureInfo `json:"occlusionTexture,omitempty"`

	// EmissiveTexture is the emissive map.
	EmissiveTexture *gltfTextureInfo `json:"emissiveTexture,omitempty"`

	// EmissiveFactor is the emissive color (RGB, default (0,0,0)).
	EmissiveFactor *[3]float32 `json:"emissiveFactor,omitempty"`

	// AlphaMode is the alpha rendering mode (default OPAQUE).
	AlphaMode *gltfAlphaMode `json:"alphaMode,omitempty"`

	// AlphaCutoff is the alpha cutoff for MASK mode (default 0.5).
	AlphaCutoff *float32 `json:"alphaCutoff,omitempty"`

	// DoubleSided indicates if the material is double-sided (default false).
	DoubleSided bool `json:"doubleSided,omitempty"`
}

// alphaMode returns the material's alpha mode, defaulted to OPAQUE.
func (m *gltfMaterial) alphaMode() gltfAlphaMode {
	if m.AlphaMode != nil {
		return *m.AlphaMode
	}
	return gltfAlphaModeOpaque
}

// alphaCutoff returns the material's alpha cutoff, defaulted to 0.5.
func (m *gltfMaterial) alphaCutoff() float32 {
	if m.AlphaCutoff != nil {
		return *m.AlphaCutoff
	}
	return 0.5
}

// emissiveFactor returns the emissive color, defaulted to (0, 0, 0).
func (m *gltfMaterial) emissiveFactor() [3]float32 {
	if m.EmissiveFactor != nil {
		return *m.EmissiveFactor
	}
	return [3]float32{0, 0, 0}
}

// gltfPbrMetallicRoughness is the metallic-roughness material model.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-material-pbrmetallicroughness
type gltfPbrMetallicRoughness struct {
	// BaseColorFactor is the base color (RGBA, default (1,1,1,1)).
	BaseColorFactor *[4]float32 `json:"baseColorFactor,omitempty"`

	// BaseColorTexture is the base color texture.
	BaseColorTexture *gltfTextureInfo `json:"baseColorTexture,omitempty"`

	// MetallicFactor is the metalness (0.0 = dielectric, 1.0 = metal, default 1.0).
	MetallicFactor *float32 `json:"metallicFactor,omitempty"`

	// RoughnessFactor is the roughness (0.0 = smooth, 1.0 = rough, default 1.0).
	RoughnessFactor *float32 `json:"roughnessFactor,omitempty"`

	// MetallicRoughnessTexture contains metallic (B) and roughness (G) channels.
	MetallicRoughnessTexture *gltfTextureInfo `json:"metallicRoughnessTexture,omitempty"`
}

// baseColorFactor returns the base color, defaulted to opaque white.
func (p *gltfPbrMetallicRoughness) baseColorFactor() [4]float32 {
	if p != nil && p.BaseColorFactor != nil {
		return *p.BaseColorFactor
	}
	return [4]float32{1, 1, 1, 1}
}

// metallicFactor returns the metalness, defaulted to 1.0.
func (p *gltfPbrMetallicRoughness) metallicFactor() float32 {
	if p != nil && p.MetallicFactor != nil {
		return *p.MetallicFactor
	}
	return 1.0
}

// roughnessFactor returns the roughness, defaulted to 1.0.
func (p *gltfPbrMetallicRoughness) roughnessFactor() float32 {
	if p != nil && p.RoughnessFactor != nil {
		return *p.RoughnessFactor
	}
	return 1.0
}

// gltfTextureInfo references a texture. The "scale" (normal maps) and
// "strength" (occlusion maps) fields are mutually exclusive synonyms for a
// single optional scalar slot; a document supplying both is malformed.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-textureinfo
type gltfTextureInfo struct {
	// Index is the texture index (required).
	Index *int `json:"index,omitempty"`

	// TexCoord is the UV set to use (default 0).
	TexCoord int `json:"texCoord,omitempty"`

	// Scale is the scalar slot under its normal-map name.
	Scale *float32 `json:"scale,omitempty"`

	// Strength is the scalar slot under its occlusion-map name.
	Strength *float32 `json:"strength,omitempty"`
}

// factor returns the scalar slot's value, defaulted to 1.0.
func (t *gltfTextureInfo) factor() float32 {
	if t.Scale != nil {
		return *t.Scale
	}
	if t.Strength != nil {
		return *t.Strength
	}
	return 1.0
}

// gltfTexture pairs a sampler with an image source.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-texture
type gltfTexture struct {
	// Name is an optional name.
	Name string `json:"name,omitempty"`

	// Sampler is the index of the sampler.
	Sampler *int `json:"sampler,omitempty"`

	// Source is the index of the image.
	Source *int `json:"source,omitempty"`
}

// gltfImage references image data. Only external file URIs are supported;
// data: URIs and bufferView-sourced images are rejected.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-image
type gltfImage struct {
	// Name is an optional name.
	Name string `json:"name,omitempty"`

	// URI is the image's location.
	URI *string `json:"uri,omitempty"`

	// MimeType is the image's media type.
	MimeType string `json:"mimeType,omitempty"`

	// BufferView is the index of a bufferView containing the image.
	BufferView *int `json:"bufferView,omitempty"`
}

// gltfSampler defines texture sampling parameters.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-sampler
type gltfSampler struct {
	// Name is an optional name.
	Name string `json:"name,omitempty"`

	// MagFilter is the magnification filter.
	MagFilter *gltfFilter `json:"magFilter,omitempty"`

	// MinFilter is the minification filter.
	MinFilter *gltfFilter `json:"minFilter,omitempty"`

	// WrapS is the wrapping mode for the U axis (default REPEAT).
	WrapS *gltfWrap `json:"wrapS,omitempty"`

	// WrapT is the wrapping mode for the V axis (default REPEAT).
	WrapT *gltfWrap `json:"wrapT,omitempty"`
}

// wrapS returns the U-axis wrap mode, defaulted to REPEAT.
func (s *gltfSampler) wrapS() gltfWrap {
	if s.WrapS != nil {
		return *s.WrapS
	}
	return gltfWrapRepeat
}

// wrapT returns the V-axis wrap mode, defaulted to REPEAT.
func (s *gltfSampler) wrapT() gltfWrap {
	if s.WrapT != nil {
		return *s.WrapT
	}
	return gltfWrapRepeat
}
