package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanthoshCompiler(t *testing.T) {
	t.Parallel()
	c := NewSanthoshCompiler()

	schemaDoc := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"project": map[string]interface{}{
				"type":      "string",
				"minLength": 1.0,
			},
		},
	}
	require.NoError(t, c.AddSchema("test://schema", schemaDoc))

	v, err := c.Compile("test://schema")
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{"project": "chunkah"}))
	assert.Error(t, v.Validate(map[string]interface{}{"project": ""}))
}

func TestSanthoshCompiler_CompileUnknownID(t *testing.T) {
	t.Parallel()
	c := NewSanthoshCompiler()
	_, err := c.Compile("test://missing")
	assert.Error(t, err)
}
