//go:build windows

// Package winapi holds the Win32 procedure table and struct layouts
// shared by the topology and hook packages: monitor enumeration, the
// low-level mouse hook, the hidden carrier window, and the absolute
// cursor-move call. Kept in one package so there is exactly one set of
// DLL handles and proc lookups for the whole process, mirroring the
// single syscall-table style the rest of the corpus uses for its own
// ioctl/device bindings.
package winapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procEnumDisplayMonitors           = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW              = user32.NewProc("GetMonitorInfoW")
	procMonitorFromPoint             = user32.NewProc("MonitorFromPoint")
	procSetWindowsHookExW            = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx          = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx               = user32.NewProc("CallNextHookEx")
	procGetMessageW                  = user32.NewProc("GetMessageW")
	procTranslateMessage             = user32.NewProc("TranslateMessage")
	procDispatchMessageW             = user32.NewProc("DispatchMessageW")
	procPostQuitMessage              = user32.NewProc("PostQuitMessage")
	procPostThreadMessageW           = user32.NewProc("PostThreadMessageW")
	procSetCursorPos                 = user32.NewProc("SetCursorPos")
	procRegisterClassExW             = user32.NewProc("RegisterClassExW")
	procCreateWindowExW              = user32.NewProc("CreateWindowExW")
	procDestroyWindow                = user32.NewProc("DestroyWindow")
	procDefWindowProcW               = user32.NewProc("DefWindowProcW")
	procSetTimer                     = user32.NewProc("SetTimer")
	procKillTimer                    = user32.NewProc("KillTimer")
	procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")

	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
	procGetModuleHandleW   = kernel32.NewProc("GetModuleHandleW")
)

// RECT mirrors the Win32 RECT structure: left <= right, top <= bottom.
type RECT struct {
	Left, Top, Right, Bottom int32
}

// POINT mirrors the Win32 POINT structure.
type POINT struct {
	X, Y int32
}

// monitorInfoExW mirrors MONITORINFOEXW (monitor rect, work area, flags,
// and the \\.\DISPLAYn device name).
type monitorInfoExW struct {
	cbSize    uint32
	rcMonitor RECT
	rcWork    RECT
	dwFlags   uint32
	szDevice  [32]uint16
}

const monitorInfoFPrimary = 0x1

// MSG mirrors the Win32 MSG structure delivered by GetMessage.
type MSG struct {
	Hwnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

// MSLLHOOKSTRUCT mirrors the struct passed to a WH_MOUSE_LL hook
// procedure for mouse-move/click/wheel events.
type MSLLHOOKSTRUCT struct {
	Pt          POINT
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// LLMHFInjected is the bit in MSLLHOOKSTRUCT.Flags set by the OS when
// the event was synthesized by a SendInput/mouse_event call rather than
// real hardware.
const LLMHFInjected = 0x1

// EnumMonitorInfo is the per-monitor data this package surfaces to
// callers after a successful EnumDisplayMonitors walk.
type EnumMonitorInfo struct {
	Handle     uintptr
	Rect       RECT
	Primary    bool
	DeviceName string
}

// EnumDisplayMonitors walks every monitor on the virtual desktop,
// calling GetMonitorInfoW on each HMONITOR the OS hands back.
func EnumDisplayMonitors() ([]EnumMonitorInfo, error) {
	var result []EnumMonitorInfo

	cb := windows.NewCallback(func(hMonitor uintptr, hdc uintptr, lprcMonitor uintptr, lParam uintptr) uintptr {
		var mi monitorInfoExW
		mi.cbSize = uint32(unsafe.Sizeof(mi))
		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret == 0 {
			// Skip monitors the OS refuses to describe; the caller still
			// gets every other monitor in this enumeration pass.
			return 1
		}
		result = append(result, EnumMonitorInfo{
			Handle:     hMonitor,
			Rect:       mi.rcMonitor,
			Primary:    mi.dwFlags&monitorInfoFPrimary != 0,
			DeviceName: windows.UTF16ToString(mi.szDevice[:]),
		})
		return 1 // continue enumeration
	})

	ret, _, err := procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		return nil, err
	}
	return result, nil
}

const monitorDefaultToNull = 0

// MonitorFromPoint returns the HMONITOR under p, or 0 if p lies outside
// every monitor (e.g. in a gap between non-adjacent rectangles).
// MONITOR_DEFAULTTONULL is passed so a miss is reported rather than
// coerced to the nearest monitor. POINT is an 8-byte by-value struct
// under the x64 calling convention, so x and y are packed into a
// single argument word rather than passed as two.
func MonitorFromPoint(p POINT) uintptr {
	packed := uintptr(uint32(p.X)) | uintptr(uint32(p.Y))<<32
	h, _, _ := procMonitorFromPoint.Call(packed, monitorDefaultToNull)
	return h
}

// SetCursorPos issues the absolute cursor-move syscall.
func SetCursorPos(x, y int32) error {
	ret, _, err := procSetCursorPos.Call(uintptr(x), uintptr(y))
	if ret == 0 {
		return err
	}
	return nil
}

// SetProcessDpiAwarenessContext declares per-monitor-DPI-aware v2, so
// monitor rectangles are reported in physical pixels rather than
// DPI-virtualized coordinates. Must be called before the first
// enumeration.
func SetProcessDpiAwarenessContext() error {
	const dpiAwarenessContextPerMonitorAwareV2 = ^uintptr(3) // (DPI_AWARENESS_CONTEXT)-4
	ret, _, err := procSetProcessDpiAwarenessContext.Call(dpiAwarenessContextPerMonitorAwareV2)
	if ret == 0 {
		return err
	}
	return nil
}

// GetCurrentThreadId returns the Win32 thread id of the calling OS
// thread, used to target PostThreadMessage at the dispatcher thread.
func GetCurrentThreadId() uint32 {
	id, _, _ := procGetCurrentThreadId.Call()
	return uint32(id)
}
