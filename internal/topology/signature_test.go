package topology

import (
	"testing"

	"github.com/cursorwarp/cursorwarp/internal/geometry"
	"github.com/stretchr/testify/assert"
)

func TestSignature_InvariantUnderEnumerationOrder(t *testing.T) {
	a := Monitor{Handle: 1, Rect: geometry.Rect{0, 0, 1920, 1080}, Primary: true, DeviceName: "\\\\.\\DISPLAY1"}
	b := Monitor{Handle: 2, Rect: geometry.Rect{1920, 0, 3840, 1080}, Primary: false, DeviceName: "\\\\.\\DISPLAY2"}

	sig1 := Signature([]Monitor{a, b})
	sig2 := Signature([]Monitor{b, a})

	assert.Equal(t, sig1, sig2)
}

func TestSignature_DiffersOnDeviceNameAlone(t *testing.T) {
	a := Monitor{Handle: 1, Rect: geometry.Rect{0, 0, 1920, 1080}, DeviceName: "\\\\.\\DISPLAY1"}
	b := Monitor{Handle: 1, Rect: geometry.Rect{0, 0, 1920, 1080}, DeviceName: "\\\\.\\DISPLAY9"}

	assert.NotEqual(t, Signature([]Monitor{a}), Signature([]Monitor{b}))
}

func TestSignature_DiffersOnPrimaryFlag(t *testing.T) {
	a := Monitor{Handle: 1, Rect: geometry.Rect{0, 0, 1920, 1080}, Primary: true, DeviceName: "D1"}
	b := Monitor{Handle: 1, Rect: geometry.Rect{0, 0, 1920, 1080}, Primary: false, DeviceName: "D1"}

	assert.NotEqual(t, Signature([]Monitor{a}), Signature([]Monitor{b}))
}

func TestSignature_StableForUnchangedSet(t *testing.T) {
	a := Monitor{Handle: 1, Rect: geometry.Rect{0, 0, 1920, 1080}, DeviceName: "D1"}
	assert.Equal(t, Signature([]Monitor{a}), Signature([]Monitor{a}))
}
