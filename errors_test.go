package cim_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cim"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := cim.NewNotFoundError("Season.SeasonDayTypeSchedules member")
		assert.Equal(t, "cim: Season.SeasonDayTypeSchedules member not found", err.Error())
	})

	t.Run("ErrorWithID", func(t *testing.T) {
		err := cim.NewNotFoundErrorWithID("Group.Members member", "item-a")
		assert.Equal(t, "cim: Group.Members member not found (member=item-a)", err.Error())
		assert.Equal(t, "item-a", err.ID())
		assert.Equal(t, "Group.Members member", err.Label())
	})

	t.Run("Is", func(t *testing.T) {
		err := cim.NewNotFoundError("DayType.SeasonDayTypeSchedules member")
		assert.True(t, errors.Is(err, cim.ErrNotFound))
		assert.False(t, errors.Is(err, cim.ErrInconsistent))
	})

	t.Run("IsNotFound", func(t *testing.T) {
		err := cim.NewNotFoundError("LoadArea.SubLoadAreas member")
		assert.True(t, cim.IsNotFound(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, cim.IsNotFound(wrapped))

		// Sentinel error
		assert.True(t, cim.IsNotFound(cim.ErrNotFound))

		// Non-matching error
		assert.False(t, cim.IsNotFound(errors.New("other error")))
		assert.False(t, cim.IsNotFound(nil))
	})
}

func TestInconsistencyError(t *testing.T) {
	type node struct{ name string }
	owner, target := &node{"owner"}, &node{"target"}

	err := cim.NewInconsistencyError("Node.Peers", owner, target)
	assert.Contains(t, err.Error(), "cim: relationship Node.Peers:")
	assert.Contains(t, err.Error(), "does not link back")
	assert.True(t, errors.Is(err, cim.ErrInconsistent))
	assert.True(t, cim.IsInconsistent(fmt.Errorf("validate: %w", err)))
	assert.False(t, cim.IsInconsistent(cim.ErrNotFound))
	assert.False(t, cim.IsInconsistent(nil))
	assert.Same(t, owner, err.Owner)
	assert.Same(t, target, err.Target)
}

func TestAggregateError(t *testing.T) {
	t.Run("NoErrors", func(t *testing.T) {
		assert.NoError(t, cim.NewAggregateError())
		assert.NoError(t, cim.NewAggregateError(nil, nil))
	})

	t.Run("SingleError", func(t *testing.T) {
		single := errors.New("only")
		assert.Same(t, single, cim.NewAggregateError(nil, single))
	})

	t.Run("MultipleErrors", func(t *testing.T) {
		first := cim.NewNotFoundError("A.Bs member")
		second := cim.NewInconsistencyError("A.C", nil, nil)
		err := cim.NewAggregateError(first, nil, second)
		require.Error(t, err)

		var agg *cim.AggregateError
		require.True(t, errors.As(err, &agg))
		assert.Len(t, agg.Errors, 2)
		assert.Contains(t, err.Error(), "cim: multiple errors:")
		assert.Contains(t, err.Error(), "[1] cim: A.Bs member not found")
		assert.True(t, errors.Is(err, cim.ErrNotFound))
		assert.True(t, errors.Is(err, cim.ErrInconsistent))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "cim: no errors", (&cim.AggregateError{}).Error())
	})
}
