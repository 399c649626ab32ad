package handle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

type renderState struct {
	frames int
	closed int
	err    error
}

func (s *renderState) Close() error {
	s.closed++
	return s.err
}

func TestInstanceData(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		_, fx, e := newInstance(t)
		before := LiveInstanceData()

		state := &renderState{frames: 3}
		require.NoError(t, e.SetInstanceData(state))
		assert.NotZero(t, fx.InstanceData(), "only the id reaches the host")
		assert.Equal(t, before+1, LiveInstanceData())

		got, err := InstanceData[*renderState](e)
		require.NoError(t, err)
		assert.Same(t, state, got)

		require.NoError(t, e.DropInstanceData())
		assert.Equal(t, before, LiveInstanceData())
		assert.Zero(t, fx.InstanceData())
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		_, _, e := newInstance(t)
		first := &renderState{}
		require.NoError(t, e.SetInstanceData(first))
		defer e.DropInstanceData()

		err := e.SetInstanceData(&renderState{})
		assert.True(t, ofx.IsKind(err, ofx.KindAlreadyExists))
		assert.Equal(t, ofx.StatErrExists, ofx.StatusOf(err))

		got, err := InstanceData[*renderState](e)
		require.NoError(t, err)
		assert.Same(t, first, got, "existing payload untouched")
	})

	t.Run("WrongType", func(t *testing.T) {
		_, _, e := newInstance(t)
		require.NoError(t, e.SetInstanceData("not a state"))
		defer e.DropInstanceData()

		_, err := InstanceData[*renderState](e)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	t.Run("Absent", func(t *testing.T) {
		_, _, e := newInstance(t)
		_, err := InstanceData[*renderState](e)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
		assert.NoError(t, e.DropInstanceData())
	})

	t.Run("DropClosesOnce", func(t *testing.T) {
		_, _, e := newInstance(t)
		state := &renderState{}
		require.NoError(t, e.SetInstanceData(state))

		require.NoError(t, e.DropInstanceData())
		require.NoError(t, e.DropInstanceData())
		assert.Equal(t, 1, state.closed)
	})

	t.Run("CloseError", func(t *testing.T) {
		_, _, e := newInstance(t)
		want := errors.New("flush failed")
		require.NoError(t, e.SetInstanceData(&renderState{err: want}))

		err := e.DropInstanceData()
		assert.ErrorIs(t, err, want)
		assert.Equal(t, ofx.StatErrUnknown, ofx.StatusOf(err))
	})

	t.Run("RollbackOnHostFailure", func(t *testing.T) {
		host, fx, e := newInstance(t)
		before := LiveInstanceData()
		host.Fail("propSetPointer", ofx.StatErrValue)

		err := e.SetInstanceData(&renderState{})
		assert.Error(t, err)
		assert.Equal(t, before, LiveInstanceData(), "registry entry rolled back")
		assert.Zero(t, fx.InstanceData())
	})
}
