//go:build windows

package winapi

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const whMouseLL = 14

// HookCallback is invoked for every WH_MOUSE_LL mouse-move event. It
// returns true to swallow the event (suppress it from reaching the
// rest of the system) or false to let it continue down the hook chain
// unchanged.
type HookCallback func(pt POINT, injected bool) (swallow bool)

var (
	hookMu      sync.Mutex
	hookHandle  uintptr
	hookOwner   HookCallback
	procCallNext = procCallNextHookEx
)

// InstallMouseHook registers the single process-wide low-level mouse
// hook. Only one hook may be installed at a time; installing a second
// one replaces the callback but leaves the first OS hook handle
// orphaned, so callers must Uninstall before installing again.
func InstallMouseHook(cb HookCallback) error {
	hookMu.Lock()
	defer hookMu.Unlock()

	hookOwner = cb
	moduleHandle, _, _ := procGetModuleHandleW.Call(0)

	h, _, err := procSetWindowsHookExW.Call(
		whMouseLL,
		windows.NewCallback(lowLevelMouseProc),
		moduleHandle,
		0,
	)
	if h == 0 {
		hookOwner = nil
		return fmt.Errorf("SetWindowsHookExW: %w", err)
	}
	hookHandle = h
	return nil
}

// UninstallMouseHook removes the process-wide mouse hook, if any is
// installed. Safe to call more than once.
func UninstallMouseHook() {
	hookMu.Lock()
	defer hookMu.Unlock()

	if hookHandle == 0 {
		return
	}
	procUnhookWindowsHookEx.Call(hookHandle)
	hookHandle = 0
	hookOwner = nil
}

const (
	wmMouseMove = 0x0200
)

// lowLevelMouseProc is the HOOKPROC trampoline registered with
// SetWindowsHookExW. It has no user-context parameter, so it recovers
// the owning callback through the process-wide hookOwner pointer
// established by InstallMouseHook, and otherwise just forwards to
// CallNextHookEx.
func lowLevelMouseProc(nCode int32, wParam, lParam uintptr) uintptr {
	if nCode >= 0 && wParam == wmMouseMove {
		hookMu.Lock()
		cb := hookOwner
		hookMu.Unlock()

		if cb != nil {
			info := (*MSLLHOOKSTRUCT)(unsafe.Pointer(lParam))
			injected := info.Flags&LLMHFInjected != 0
			if cb(info.Pt, injected) {
				return 1
			}
		}
	}
	ret, _, _ := procCallNext.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}
