package scene

// AlphaMode selects how a material's alpha channel is interpreted.
type AlphaMode int32

const (
	// AlphaModeOpaque renders the material fully opaque, ignoring alpha.
	AlphaModeOpaque AlphaMode = iota

	// AlphaModeCutoff discards fragments whose alpha falls below the
	// material's cutoff value (the source format calls this "MASK").
	AlphaModeCutoff

	// AlphaModeBlend alpha-blends the material over the backbuffer.
	AlphaModeBlend
)

// String returns the alpha mode's name.
func (m AlphaMode) String() string {
	switch m {
	case AlphaModeOpaque:
		return "Opaque"
	case AlphaModeCutoff:
		return "Cutoff"
	case AlphaModeBlend:
		return "Blend"
	default:
		return "Unknown"
	}
}

// ImageFormat tags the detected encoding of an image's byte contents.
type ImageFormat int32

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatPNG
	ImageFormatJPEG
	ImageFormatBMP
)

// String returns the image format's name.
func (f ImageFormat) String() string {
	switch f {
	case ImageFormatPNG:
		return "PNG"
	case ImageFormatJPEG:
		return "JPEG"
	case ImageFormatBMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// Material holds the physically-based shading parameters of one source
// material. Texture slots are indices into Scene.Images (-1 when absent).
// The metallic and roughness slots both point at the source's single
// metallic-roughness texture: the format packs both properties into one
// image's channels, so there is no distinct source to split them across.
type Material struct {
	// Name identifies the material (may be empty).
	Name string

	// BaseColor is the RGBA base color factor.
	BaseColor [4]float32

	// BaseColorTexture is the base color image slot.
	BaseColorTexture int

	// Metallic is the metalness factor in [0, 1].
	Metallic float32

	// MetallicTexture is the metallic image slot.
	MetallicTexture int

	// Roughness is the roughness factor in [0, 1].
	Roughness float32

	// RoughnessTexture is the roughness image slot.
	RoughnessTexture int

	// NormalTexture is the tangent-space normal map slot.
	NormalTexture int

	// NormalScale scales the sampled normal's X and Y components.
	NormalScale float32

	// OcclusionTexture is the ambient occlusion map slot.
	OcclusionTexture int

	// OcclusionStrength blends between no occlusion (0) and full (1).
	OcclusionStrength float32

	// EmissiveTexture is the emissive map slot.
	EmissiveTexture int

	// EmissiveFactor is the RGB emissive color factor.
	EmissiveFactor [3]float32

	// AlphaMode selects opaque, cutoff or blended alpha handling.
	AlphaMode AlphaMode

	// AlphaCutoff is the discard threshold used by AlphaModeCutoff.
	AlphaCutoff float32

	// DoubleSided disables backface culling when true.
	DoubleSided bool
}

// Image is an external image referenced by the document. Bytes are only
// loaded when the importer was configured to do so; Path is always usable by
// the host to load the file itself.
type Image struct {
	// Name identifies the image (may be empty).
	Name string

	// Path is the percent-decoded image path joined to the document's base
	// directory.
	Path string

	// Data holds the raw (undecoded) file contents, or nil when byte loading
	// was not requested.
	Data []byte

	// Format is the detected image encoding: sniffed from Data when bytes
	// were loaded, otherwise derived from the document's mimeType field.
	Format ImageFormat
}
