package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechniquePasses(t *testing.T) {
	tests := []struct {
		name      string
		technique Technique
		passes    []string
	}{
		{"lit", TechniqueLit, []string{PipelineKeyLit}},
		{"texture mix", TechniqueTextureMix, []string{PipelineKeyTextureMix}},
		{"wiggle", TechniqueWiggle, []string{PipelineKeyWiggle}},
		{"cell shade outline before fill", TechniqueCellShade, []string{PipelineKeyCellOutline, PipelineKeyCellFill}},
		{"marker", TechniqueMarker, []string{PipelineKeyMarker}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.passes, tt.technique.Passes())
		})
	}
}

func TestTechniqueUnknownHasNoPasses(t *testing.T) {
	assert.Nil(t, Technique(99).Passes())
}

func TestTechniqueCastsShadow(t *testing.T) {
	assert.True(t, TechniqueLit.CastsShadow())
	assert.True(t, TechniqueTextureMix.CastsShadow())
	assert.True(t, TechniqueWiggle.CastsShadow())
	assert.True(t, TechniqueCellShade.CastsShadow())
	assert.False(t, TechniqueMarker.CastsShadow())
}

func TestTechniqueString(t *testing.T) {
	assert.Equal(t, "lit", TechniqueLit.String())
	assert.Equal(t, "cell-shade", TechniqueCellShade.String())
	assert.Equal(t, "marker", TechniqueMarker.String())
	assert.Equal(t, "unknown", Technique(99).String())
}
