package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaError(t *testing.T) {
	t.Run("message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("Season", "name", "invalid default", cause)

		assert.Equal(t, "cimgen: schema error on class Season attribute name: invalid default: underlying error", err.Error())
	})

	t.Run("message with class only", func(t *testing.T) {
		err := &SchemaError{Class: "Season"}
		assert.Equal(t, "cimgen: schema error on class Season", err.Error())
	})

	t.Run("unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewSchemaError("Season", "", "", cause)
		assert.Equal(t, cause, err.Unwrap())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("matches ErrInvalidSchema", func(t *testing.T) {
		err := fmt.Errorf("load: %w", NewSchemaError("Season", "", "", nil))
		assert.ErrorIs(t, err, ErrInvalidSchema)
		assert.True(t, IsSchemaError(err))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("message with value", func(t *testing.T) {
		err := NewConfigError("Workers", 0, "workers must be positive")
		assert.Equal(t, `cimgen: config error for "Workers" (value: 0): workers must be positive`, err.Error())
	})

	t.Run("message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.ErrorIs(t, err, ErrMissingConfig)
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestEdgeError(t *testing.T) {
	t.Run("message with both classes", func(t *testing.T) {
		err := NewEdgeError("Season", "ViolationLimit", "violationLimits", "inverse not found", nil)
		assert.Equal(t, "cimgen: association error on reference violationLimits (Season -> ViolationLimit): inverse not found", err.Error())
	})

	t.Run("message with owner only", func(t *testing.T) {
		err := &EdgeError{From: "Season", Edge: "violationLimits"}
		assert.Equal(t, "cimgen: association error on reference violationLimits of Season", err.Error())
	})

	t.Run("matches ErrInvalidEdge", func(t *testing.T) {
		cause := errors.New("cause")
		err := NewEdgeError("A", "B", "b", "", cause)
		assert.ErrorIs(t, err, ErrInvalidEdge)
		assert.ErrorIs(t, err, cause)
		assert.True(t, IsEdgeError(err))
		assert.False(t, IsSchemaError(err))
	})
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewGenerationError("write", "season.go", "", cause)

	assert.Equal(t, "cimgen: generation error in write (file: season.go): disk full", err.Error())
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsGenerationError(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("Season", "name", 3, "default is not a value of SeasonName")

	assert.Equal(t, "cimgen: validation error on Season.name (value: 3): default is not a value of SeasonName", err.Error())
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(errors.New("other")))
}
