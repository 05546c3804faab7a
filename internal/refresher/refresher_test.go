package refresher

import (
	"errors"
	"testing"

	"github.com/cursorwarp/cursorwarp/internal/topology"
	"github.com/stretchr/testify/assert"
)

type fakeModel struct {
	changed   bool
	err       error
	current   topology.Snapshot
	refreshes int
}

func (f *fakeModel) Refresh() (bool, error) {
	f.refreshes++
	return f.changed, f.err
}

func (f *fakeModel) Current() topology.Snapshot {
	return f.current
}

func TestRefresher_NotifyCallsModelRefresh(t *testing.T) {
	m := &fakeModel{}
	r := New(m)

	r.Notify()
	assert.Equal(t, 1, m.refreshes)
}

func TestRefresher_TickCallsModelRefresh(t *testing.T) {
	m := &fakeModel{}
	r := New(m)

	r.Tick()
	r.Tick()
	assert.Equal(t, 2, m.refreshes)
}

func TestRefresher_SwallowsRefreshError(t *testing.T) {
	m := &fakeModel{err: errors.New("enumerate failed")}
	r := New(m)

	assert.NotPanics(t, func() { r.Notify() })
	assert.Equal(t, 1, m.refreshes)
}

func TestRefresher_UnchangedRefreshIsCheapAndSilent(t *testing.T) {
	m := &fakeModel{changed: false}
	r := New(m)

	for i := 0; i < 5; i++ {
		r.Tick()
	}
	assert.Equal(t, 5, m.refreshes)
}
