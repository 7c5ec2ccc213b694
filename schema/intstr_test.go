package schema

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntOrString(t *testing.T) {
	t.Run("marshals integers as numbers", func(t *testing.T) {
		data, err := json.Marshal(FromInt(8080))
		require.NoError(t, err)
		assert.Equal(t, "8080", string(data))
	})

	t.Run("marshals strings as strings", func(t *testing.T) {
		data, err := json.Marshal(FromString("http"))
		require.NoError(t, err)
		assert.Equal(t, `"http"`, string(data))
	})

	t.Run("unmarshals either form", func(t *testing.T) {
		var v IntOrString
		require.NoError(t, json.Unmarshal([]byte(`"http"`), &v))
		assert.True(t, v.IsString)
		assert.Equal(t, "http", v.String())

		require.NoError(t, json.Unmarshal([]byte(`8080`), &v))
		assert.False(t, v.IsString)
		assert.Equal(t, int32(8080), v.IntVal)
		assert.Equal(t, "8080", v.String())
	})

	t.Run("rejects other JSON shapes", func(t *testing.T) {
		var v IntOrString
		assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	})
}
