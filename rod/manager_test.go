//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/poster"
	"github.com/fwojciec/poster/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("replaces browser after max pages", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithManagerMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		first, release, err := manager.Acquire()
		require.NoError(t, err)
		release()
		same, release, err := manager.Acquire()
		require.NoError(t, err)
		release()
		assert.Same(t, first, same)

		next, release, err := manager.Acquire()
		require.NoError(t, err)
		defer release()

		assert.NotSame(t, first, next)
	})

	t.Run("retired browser serves open pages until released", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithManagerMaxPages(1))
		require.NoError(t, err)
		defer manager.Close()

		old, releaseOld, err := manager.Acquire()
		require.NoError(t, err)

		fresh, releaseFresh, err := manager.Acquire()
		require.NoError(t, err)
		defer releaseFresh()
		require.NotSame(t, old, fresh)

		page, err := old.Page(proto.TargetCreateTarget{})
		require.NoError(t, err)
		require.NoError(t, page.Close())

		releaseOld()
		releaseOld()
	})

	t.Run("fails after close", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager()
		require.NoError(t, err)
		require.NoError(t, manager.Close())
		require.NoError(t, manager.Close())

		_, _, err = manager.Acquire()

		require.Error(t, err)
		assert.Equal(t, poster.EINVALID, poster.ErrorCode(err))
		assert.Zero(t, manager.LauncherPID())
	})
}
