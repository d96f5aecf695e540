package embed

import (
	"strings"
	"testing"

	"github.com/poiesic/vectis/core"
	"github.com/stretchr/testify/assert"
)

func TestRenderIncludesPayloadAndAnnotations(t *testing.T) {
	leaf := core.NewLeaf("the quick brown fox", map[string]any{
		"source": "corpus",
		"page":   42,
	})

	text := Render(leaf)
	assert.True(t, strings.HasPrefix(text, "Leaf: the quick brown fox"))
	assert.Contains(t, text, "page=42")
	assert.Contains(t, text, "source=corpus")
	// Annotation order is stable.
	assert.Less(t, strings.Index(text, "page=42"), strings.Index(text, "source=corpus"))
}

func TestRenderDatalessObject(t *testing.T) {
	net := core.NewNet(nil)
	assert.Equal(t, "Net", Render(net))
}

func TestRenderNamedContainers(t *testing.T) {
	layer := core.NewLayer("working-set", nil)
	assert.Equal(t, "Layer: working-set", Render(layer))
}
