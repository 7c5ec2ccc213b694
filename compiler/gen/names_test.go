package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveNames(t *testing.T) {
	t.Run("derives the full identifier bundle", func(t *testing.T) {
		n := DeriveNames("io.k8s.api.core.v1.Pod")

		assert.Equal(t, "io.k8s.api.core.v1.Pod", n.ID)
		assert.Equal(t, "IoK8sApiCoreV1Pod", n.Type)
		assert.Equal(t, "IoK8sApiCoreV1PodType", n.Descriptor)
		assert.Equal(t, "IoK8sApiCoreV1PodSchema", n.Schema)
		assert.Equal(t, "AddIoK8sApiCoreV1PodToSchema", n.AddFunc)
		assert.Equal(t, "NewIoK8sApiCoreV1Pod", n.Constructor)
		assert.Equal(t, "Pod", n.ShortType)
		assert.Equal(t, "PodSchema", n.ShortSchema)
		assert.Equal(t, "AddPodToSchema", n.ShortAddFunc)
		assert.Equal(t, "NewPod", n.ShortConstructor)
		assert.Equal(t, "api/core/v1", n.Dir)
		assert.Equal(t, "pod.go", n.File)
		assert.Equal(t, "v1", n.Package)
	})

	t.Run("preserves interior capitalization", func(t *testing.T) {
		n := DeriveNames("io.k8s.apimachinery.pkg.util.intstr.IntOrString")

		assert.Equal(t, "IoK8sApimachineryPkgUtilIntstrIntOrString", n.Type)
		assert.Equal(t, "IntOrString", n.ShortType)
		assert.Equal(t, "apimachinery/pkg/util/intstr", n.Dir)
		assert.Equal(t, "intorstring.go", n.File)
	})

	t.Run("treats hyphens as segment separators", func(t *testing.T) {
		n := DeriveNames("io.k8s.apiextensions-apiserver.pkg.apis.apiextensions.v1.CustomResourceDefinition")

		assert.Contains(t, n.Type, "ApiextensionsApiserver")
		assert.Equal(t, "apiextensions_apiserver/pkg/apis/apiextensions/v1", n.Dir)
	})

	t.Run("handles names without the common prefix", func(t *testing.T) {
		n := DeriveNames("pkg.Foo")

		assert.Equal(t, "PkgFoo", n.Type)
		assert.Equal(t, "Foo", n.ShortType)
		assert.Equal(t, "pkg", n.Dir)
		assert.Equal(t, "pkg", n.Package)
		assert.Equal(t, "foo.go", n.File)
	})

	t.Run("is deterministic", func(t *testing.T) {
		require.Equal(t, DeriveNames("io.k8s.api.core.v1.Pod"), DeriveNames("io.k8s.api.core.v1.Pod"))
	})

	t.Run("distinct names yield distinct bundles", func(t *testing.T) {
		assert.NotEqual(t, DeriveNames("a.b.C"), DeriveNames("a.bC"))
		assert.NotEqual(t, DeriveNames("io.k8s.api.core.v1.Pod"), DeriveNames("io.k8s.api.core.v1.PodList"))
	})

	t.Run("single-segment names have no directory", func(t *testing.T) {
		n := DeriveNames("Thing")

		assert.Equal(t, "Thing", n.Type)
		assert.Equal(t, "Thing", n.ShortType)
		assert.Empty(t, n.Dir)
		assert.Empty(t, n.Package)
	})
}
