package topology

import (
	"errors"
	"testing"

	"github.com/cursorwarp/cursorwarp/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	monitors []Monitor
	err      error
}

func (f *fakeBackend) EnumerateMonitors() ([]Monitor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.monitors, nil
}

func twoMonitors() []Monitor {
	return []Monitor{
		{Handle: 1, Rect: geometry.Rect{0, 0, 1920, 1080}, Primary: true, DeviceName: "D1"},
		{Handle: 2, Rect: geometry.Rect{1920, 0, 3840, 1080}, DeviceName: "D2"},
	}
}

func TestModel_RefreshPublishesFirstSnapshot(t *testing.T) {
	backend := &fakeBackend{monitors: twoMonitors()}
	m := NewModel(backend)

	changed, err := m.Refresh()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, m.Current().Monitors, 2)
}

func TestModel_RefreshIsNoopWhenSignatureUnchanged(t *testing.T) {
	backend := &fakeBackend{monitors: twoMonitors()}
	m := NewModel(backend)

	_, err := m.Refresh()
	require.NoError(t, err)

	changed, err := m.Refresh()
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestModel_RefreshDetectsChange(t *testing.T) {
	backend := &fakeBackend{monitors: twoMonitors()}
	m := NewModel(backend)
	_, err := m.Refresh()
	require.NoError(t, err)

	backend.monitors = []Monitor{twoMonitors()[0]}
	changed, err := m.Refresh()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, m.Current().Monitors, 1)
}

func TestModel_RefreshInvokesOnChangeOnlyWhenSignatureChanges(t *testing.T) {
	backend := &fakeBackend{monitors: twoMonitors()}
	m := NewModel(backend)

	calls := 0
	m.OnChange(func(Snapshot) { calls++ })

	_, err := m.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = m.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "unchanged refresh must not fire onChange")

	backend.monitors = []Monitor{twoMonitors()[0]}
	_, err = m.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestModel_RefreshPropagatesEnumerateError(t *testing.T) {
	backend := &fakeBackend{err: errors.New("enum failed")}
	m := NewModel(backend)

	changed, err := m.Refresh()
	assert.Error(t, err)
	assert.False(t, changed)
}

func TestModel_RefreshRejectsEmptyMonitorSet(t *testing.T) {
	backend := &fakeBackend{monitors: nil}
	m := NewModel(backend)

	_, err := m.Refresh()
	assert.Error(t, err)
}

func TestModel_FindAndAt(t *testing.T) {
	backend := &fakeBackend{monitors: twoMonitors()}
	m := NewModel(backend)
	_, err := m.Refresh()
	require.NoError(t, err)

	mon, ok := m.Find(2)
	require.True(t, ok)
	assert.Equal(t, "D2", mon.DeviceName)

	_, ok = m.Find(99)
	assert.False(t, ok)

	mon, ok = m.At(geometry.Point{2000, 500})
	require.True(t, ok)
	assert.Equal(t, uintptr(2), mon.Handle)

	_, ok = m.At(geometry.Point{9000, 9000})
	assert.False(t, ok)
}
