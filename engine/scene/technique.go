package scene

// Technique selects the render passes and pipelines used to draw an object
// during the main colour pass. Every object carries exactly one technique;
// adding a look to the renderer means adding a technique entry and its
// pipelines, not editing the frame loop.
type Technique int

const (
	// TechniqueLit is standard per-pixel lighting with shadows.
	TechniqueLit Technique = iota

	// TechniqueTextureMix is lit shading that cross-fades between the
	// object's two textures using the frame fading factor.
	TechniqueTextureMix

	// TechniqueWiggle displaces vertices along their normals in the vertex
	// stage and scrolls the texture UVs in the pixel stage.
	TechniqueWiggle

	// TechniqueCellShade draws two passes: an enlarged front-culled outline
	// pass, then a back-culled fill pass with banded lighting from a
	// point-sampled ramp texture.
	TechniqueCellShade

	// TechniqueMarker is the unlit additive glow used for light markers.
	// Depth is read but not written so markers never occlude geometry.
	TechniqueMarker
)

// Pipeline cache keys. The application registers one pipeline per key before
// the first frame; the technique table references them by name.
const (
	PipelineKeyDepthOnly   = "depth_only"
	PipelineKeyLit         = "lit"
	PipelineKeyTextureMix  = "texture_mix"
	PipelineKeyWiggle      = "wiggle"
	PipelineKeyCellOutline = "cell_outline"
	PipelineKeyCellFill    = "cell_fill"
	PipelineKeyMarker      = "light_marker"
)

// techniquePasses maps each technique to its ordered main-pass pipelines.
// Multi-entry techniques draw the same mesh once per entry.
var techniquePasses = map[Technique][]string{
	TechniqueLit:        {PipelineKeyLit},
	TechniqueTextureMix: {PipelineKeyTextureMix},
	TechniqueWiggle:     {PipelineKeyWiggle},
	TechniqueCellShade:  {PipelineKeyCellOutline, PipelineKeyCellFill},
	TechniqueMarker:     {PipelineKeyMarker},
}

// String returns the technique name for logs.
func (t Technique) String() string {
	switch t {
	case TechniqueLit:
		return "lit"
	case TechniqueTextureMix:
		return "texture-mix"
	case TechniqueWiggle:
		return "wiggle"
	case TechniqueCellShade:
		return "cell-shade"
	case TechniqueMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Passes returns the ordered pipeline keys for this technique. Unknown
// techniques return nil, which the dispatcher treats as a skipped draw.
//
// Returns:
//   - []string: the pipeline keys drawn in order
func (t Technique) Passes() []string {
	return techniquePasses[t]
}

// CastsShadow reports whether objects drawn with this technique render into
// the shadow depth passes. Markers are emissive and cast no shadow.
//
// Returns:
//   - bool: true if the technique participates in shadow passes
func (t Technique) CastsShadow() bool {
	return t != TechniqueMarker
}
