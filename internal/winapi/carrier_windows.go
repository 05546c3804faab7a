//go:build windows

package winapi

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Window messages this package cares about. The full set exists in
// winuser.h; only the ones the carrier window and dispatcher act on
// are named here.
const (
	WMDestroy       = 0x0002
	WMDisplayChange = 0x007E
	WMSettingChange = 0x001A
	WMTimer         = 0x0113
	WMQuit          = 0x0012
	WMUser          = 0x0400
)

const (
	wsExToolWindow = 0x00000080
	wsPopup        = 0x80000000
)

type wndClassExW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

// CarrierWindow is the hidden window this process creates solely to
// receive display-change/settings-change notifications and the
// periodic refresh timer, both delivered on the dispatcher's message
// loop thread.
type CarrierWindow struct {
	hwnd      windows.HWND
	className string
}

var (
	carrierMu       sync.Mutex
	carrierOnNotify func(msg uint32)
)

// NewCarrierWindow registers a window class and creates one invisible
// top-level window of that class. onNotify is invoked from the
// dispatcher thread's WndProc for WM_DISPLAYCHANGE, WM_SETTINGCHANGE,
// and WM_TIMER.
func NewCarrierWindow(className string, onNotify func(msg uint32)) (*CarrierWindow, error) {
	carrierMu.Lock()
	carrierOnNotify = onNotify
	carrierMu.Unlock()

	classNamePtr, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}

	hInstance, _, _ := procGetModuleHandleW.Call(0)

	wc := wndClassExW{
		lpfnWndProc:   windows.NewCallback(carrierWndProc),
		hInstance:     windows.Handle(hInstance),
		lpszClassName: classNamePtr,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))

	atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return nil, fmt.Errorf("RegisterClassExW: %w", err)
	}

	hwnd, _, err := procCreateWindowExW.Call(
		uintptr(wsExToolWindow),
		uintptr(unsafe.Pointer(classNamePtr)),
		uintptr(unsafe.Pointer(classNamePtr)),
		wsPopup,
		0, 0, 0, 0,
		0, 0, hInstance, 0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("CreateWindowExW: %w", err)
	}

	return &CarrierWindow{hwnd: windows.HWND(hwnd), className: className}, nil
}

// Handle returns the underlying HWND.
func (c *CarrierWindow) Handle() windows.HWND { return c.hwnd }

// SetTimer arms a repeating WM_TIMER on this window, delivered on the
// dispatcher thread's message loop.
func (c *CarrierWindow) SetTimer(id uintptr, periodMs uint32) error {
	ret, _, err := procSetTimer.Call(uintptr(c.hwnd), id, uintptr(periodMs), 0)
	if ret == 0 {
		return fmt.Errorf("SetTimer: %w", err)
	}
	return nil
}

// KillTimer disarms a timer previously armed with SetTimer.
func (c *CarrierWindow) KillTimer(id uintptr) {
	procKillTimer.Call(uintptr(c.hwnd), id)
}

// Destroy tears down the carrier window. Call during shutdown, after
// the message loop has exited.
func (c *CarrierWindow) Destroy() error {
	ret, _, err := procDestroyWindow.Call(uintptr(c.hwnd))
	if ret == 0 {
		return fmt.Errorf("DestroyWindow: %w", err)
	}
	return nil
}

func carrierWndProc(hwnd windows.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case WMDisplayChange, WMSettingChange, WMTimer:
		carrierMu.Lock()
		cb := carrierOnNotify
		carrierMu.Unlock()
		if cb != nil {
			cb(msg)
		}
		return 0
	case WMDestroy:
		return 0
	default:
		ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
		return ret
	}
}

// RunMessageLoop pumps GetMessage/TranslateMessage/DispatchMessage
// until WM_QUIT is posted (by PostQuitMessage or PostThreadMessage),
// returning the WM_QUIT exit code. This is the dispatcher's sole
// suspension point: everything else runs to completion inside a single
// DispatchMessage call.
func RunMessageLoop() int {
	var msg MSG
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		if int32(ret) <= 0 {
			return int(msg.WParam)
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

// PostQuitMessage posts WM_QUIT to the calling thread's message queue.
func PostQuitMessage(exitCode int) {
	procPostQuitMessage.Call(uintptr(exitCode))
}

// PostQuitMessageToThread posts WM_QUIT to a specific OS thread, used
// by the out-of-band interrupt handler, which runs on its own
// goroutine/thread, to ask the dispatcher thread to unwind cleanly.
func PostQuitMessageToThread(threadID uint32) error {
	ret, _, err := procPostThreadMessageW.Call(uintptr(threadID), WMQuit, 0, 0)
	if ret == 0 {
		return fmt.Errorf("PostThreadMessage: %w", err)
	}
	return nil
}
