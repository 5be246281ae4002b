package testutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/apistruct/testutil"
)

// fakeComponent records lifecycle calls into a shared log.
type fakeComponent struct {
	name     string
	log      *[]string
	startErr error
	stopErr  error
	resetErr error
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(context.Context) error {
	*f.log = append(*f.log, "start "+f.name)
	return f.startErr
}

func (f *fakeComponent) Stop(context.Context) error {
	*f.log = append(*f.log, "stop "+f.name)
	return f.stopErr
}

func (f *fakeComponent) Reset(context.Context) error {
	*f.log = append(*f.log, "reset "+f.name)
	return f.resetErr
}

func TestManager_OrderedLifecycle(t *testing.T) {
	var log []string
	m := testutil.NewManager(context.Background(), &fakeComponent{name: "a", log: &log})
	m.Add(&fakeComponent{name: "b", log: &log})

	require.NoError(t, m.StartAll())
	require.NoError(t, m.ResetAll())
	require.NoError(t, m.Cleanup())

	assert.Equal(t, []string{"start a", "start b", "reset a", "reset b", "stop b", "stop a"}, log)
	assert.Equal(t, "b", m.Get("b").Name())
	assert.Nil(t, m.Get("c"))
}

func TestManager_StartFailureStopsStarted(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	m := testutil.NewManager(context.Background(),
		&fakeComponent{name: "a", log: &log},
		&fakeComponent{name: "b", log: &log, startErr: boom},
		&fakeComponent{name: "c", log: &log},
	)

	err := m.StartAll()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to start component b")
	assert.Equal(t, []string{"start a", "start b", "stop a"}, log)

	log = log[:0]
	require.NoError(t, m.StopAll())
	assert.Empty(t, log)
}

func TestManager_StopCollectsErrors(t *testing.T) {
	var log []string
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	m := testutil.NewManager(context.Background(),
		&fakeComponent{name: "a", log: &log, stopErr: errA},
		&fakeComponent{name: "b", log: &log, stopErr: errB},
	)
	require.NoError(t, m.StartAll())

	err := m.StopAll()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestManager_ResetStopsAtFirstFailure(t *testing.T) {
	var log []string
	m := testutil.NewManager(context.Background(),
		&fakeComponent{name: "a", log: &log, resetErr: errors.New("dirty")},
		&fakeComponent{name: "b", log: &log},
	)

	err := m.ResetAll()
	require.Error(t, err)
	assert.Equal(t, []string{"reset a"}, log)
}

func TestManager_WithStubServers(t *testing.T) {
	users := testutil.NewStubServer("users")
	posts := testutil.NewStubServer("posts")
	m := testutil.NewManager(context.Background(), users, posts)
	require.NoError(t, m.StartAll())
	t.Cleanup(func() { _ = m.Cleanup() })

	assert.NotEmpty(t, users.URL())
	assert.NotEqual(t, users.URL(), posts.URL())

	require.NoError(t, m.Cleanup())
	assert.Empty(t, users.URL())
	assert.Empty(t, posts.URL())
}

func TestTHelper_SetupStopsOnCleanup(t *testing.T) {
	var log []string
	t.Run("inner", func(t *testing.T) {
		m := testutil.T(t).Setup(
			&fakeComponent{name: "a", log: &log},
			&fakeComponent{name: "b", log: &log},
		)
		assert.NotNil(t, m.Get("a"))
		testutil.T(t).Reset(m.Get("b"))
	})
	assert.Equal(t, []string{"start a", "start b", "reset b", "stop b", "stop a"}, log)
}

func TestSetupWithContext(t *testing.T) {
	var log []string
	cleanup, err := testutil.SetupWithContext(context.Background(), &fakeComponent{name: "a", log: &log})
	require.NoError(t, err)
	require.NoError(t, cleanup())
	assert.Equal(t, []string{"start a", "stop a"}, log)

	_, err = testutil.Setup(&fakeComponent{name: "b", log: &log, startErr: errors.New("no")})
	assert.Error(t, err)
}
