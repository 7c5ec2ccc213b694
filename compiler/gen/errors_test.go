package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("Workers", -1, "workers must be positive")

	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), "typegen: config error")
	assert.Contains(t, err.Error(), "Workers")
	assert.Contains(t, err.Error(), "-1")
}

func TestDefinitionError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDefinitionError("pkg.Foo", "write output", cause)

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "pkg.Foo")
	assert.Contains(t, err.Error(), "write output")
	assert.Contains(t, err.Error(), "disk full")
}
