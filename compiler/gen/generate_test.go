package gen

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefinitions = map[string]map[string]any{
	"io.k8s.api.core.v1.Pod": {
		"type":        "object",
		"description": "Pod is a collection of containers.",
		"properties": map[string]any{
			"apiVersion": map[string]any{"type": "string"},
			"kind":       map[string]any{"type": "string"},
			"spec":       map[string]any{"$ref": "#/definitions/io.k8s.api.core.v1.PodSpec"},
		},
		"x-kubernetes-group-version-kind": []any{
			map[string]any{"group": "", "version": "v1", "kind": "Pod"},
		},
	},
	"io.k8s.api.core.v1.PodSpec": {
		"type": "object",
		"properties": map[string]any{
			"hostname": map[string]any{"type": "string"},
			"port":     map[string]any{"type": "string", "format": "int-or-string"},
		},
		"required": []any{"hostname"},
	},
	"io.k8s.apimachinery.pkg.util.intstr.IntOrString": {
		"type":   "string",
		"format": "int-or-string",
	},
}

func generateInto(t *testing.T, dir string, opts ...Option) {
	t.Helper()
	cfg, err := NewConfig(append([]Option{
		WithTarget(dir),
		WithPackage("example.com/models"),
		WithWorkers(2),
	}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, NewGenerator(cfg, testDefinitions).Generate(context.Background()))
}

func TestGenerate(t *testing.T) {
	t.Run("writes one file per definition plus indexes", func(t *testing.T) {
		dir := t.TempDir()
		generateInto(t, dir)

		for _, rel := range []string{
			"api/core/v1/pod.go",
			"api/core/v1/podspec.go",
			"apimachinery/pkg/util/intstr/intorstring.go",
			"index.go",
			"api/index.go",
			"api/core/index.go",
			"apimachinery/pkg/util/index.go",
		} {
			_, err := os.Stat(filepath.Join(dir, rel))
			assert.NoError(t, err, "expected %s to exist", rel)
		}
	})

	t.Run("generated files carry the expected declarations", func(t *testing.T) {
		dir := t.TempDir()
		generateInto(t, dir)

		pod, err := os.ReadFile(filepath.Join(dir, "api/core/v1/pod.go"))
		require.NoError(t, err)
		assert.Contains(t, string(pod), "type IoK8sApiCoreV1Pod struct")
		assert.Contains(t, string(pod), "func AddIoK8sApiCoreV1PodToSchema()")
		assert.Contains(t, string(pod), "AddIoK8sApiCoreV1PodSpecToSchema()")
		assert.Contains(t, string(pod), "Code generated by typegen. DO NOT EDIT.")
		assert.NotContains(t, string(pod), "description", "descriptions must not survive into the schema document")

		spec, err := os.ReadFile(filepath.Join(dir, "api/core/v1/podspec.go"))
		require.NoError(t, err)
		assert.Contains(t, string(spec), "Hostname string")
		assert.Contains(t, string(spec), "schema.IntOrString")
	})

	t.Run("output is deterministic across runs", func(t *testing.T) {
		a := t.TempDir()
		b := t.TempDir()
		generateInto(t, a)
		generateInto(t, b)

		require.NoError(t, filepath.WalkDir(a, func(path string, d fs.DirEntry, err error) error {
			require.NoError(t, err)
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(a, path)
			require.NoError(t, err)
			want, err := os.ReadFile(path)
			require.NoError(t, err)
			got, err := os.ReadFile(filepath.Join(b, rel))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "file %s differs between runs", rel)
			return nil
		}))
	})

	t.Run("honors a custom header", func(t *testing.T) {
		dir := t.TempDir()
		generateInto(t, dir, WithHeader("Custom header."))

		pod, err := os.ReadFile(filepath.Join(dir, "api/core/v1/pod.go"))
		require.NoError(t, err)
		assert.Contains(t, string(pod), "Custom header.")
	})

	t.Run("cache skips unchanged definitions on the second run", func(t *testing.T) {
		dir := t.TempDir()
		generateInto(t, dir, WithCache(true))

		pod := filepath.Join(dir, "api/core/v1/pod.go")
		before, err := os.Stat(pod)
		require.NoError(t, err)

		generateInto(t, dir, WithCache(true))
		after, err := os.Stat(pod)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime(), "unchanged definition must not be rewritten")
	})

	t.Run("empty definitions map is a fatal error", func(t *testing.T) {
		cfg, err := NewConfig(WithTarget(t.TempDir()), WithPackage("example.com/models"))
		require.NoError(t, err)

		err = NewGenerator(cfg, nil).Generate(context.Background())
		assert.ErrorIs(t, err, ErrNoDefinitions)
	})
}
