package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	assert.InDelta(t, 0.006, c.Cost(1000, 1000), 1e-9)
	assert.Zero(t, c.Cost(0, 0))
}

func TestLookupCostUnknown(t *testing.T) {
	assert.Nil(t, LookupCost("some-future-model"))
}

func TestLookupCostCoversAliasTargets(t *testing.T) {
	// Every model our friendly aliases resolve to must be priced, or
	// event cost tracking silently records zero for the default setup.
	for _, aliases := range []map[string]string{anthropicModels, openaiModels, geminiModels} {
		for alias, id := range aliases {
			c := LookupCost(id)
			require.NotNilf(t, c, "alias %q resolves to unpriced model %q", alias, id)
			assert.Positivef(t, c.InputPerMTok, "model %q has zero input price", id)
		}
	}
}
