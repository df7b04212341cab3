package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger hace panic al arrancar si su FilePath no existe;
// el guard decide si se monta.
func TestSwaggerFilePresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")

	assert.False(t, swaggerFilePresent(path), "sin archivo no debe montarse /docs")

	require.NoError(t, os.WriteFile(path, []byte(`{"swagger":"2.0"}`), 0o644))
	assert.True(t, swaggerFilePresent(path))
}
