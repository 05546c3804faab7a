//go:build windows

package dispatcher

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/cursorwarp/cursorwarp/internal/config"
	"github.com/cursorwarp/cursorwarp/internal/geometry"
	"github.com/cursorwarp/cursorwarp/internal/hook"
	"github.com/cursorwarp/cursorwarp/internal/logger"
	"github.com/cursorwarp/cursorwarp/internal/refresher"
	"github.com/cursorwarp/cursorwarp/internal/topology"
	"github.com/cursorwarp/cursorwarp/internal/winapi"
)

const (
	carrierClassName = "CursorWarpCarrierWindow"
	refreshTimerID   = 1
)

func run(cfg config.Config) int {
	// The hook, the timer, and the message loop are all thread-affined
	// Win32 resources: pin this goroutine to one OS thread so the
	// thread id captured for the interrupt handler stays valid for the
	// life of the process.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if cfg.LogLevel != "" {
		logger.SetLevel(cfg.LogLevel)
	}

	if err := topology.DeclarePerMonitorDPIAware(); err != nil {
		return startupFailure("declare per-monitor DPI awareness", err)
	}

	backend, err := topology.NewWindowsBackend()
	if err != nil {
		return startupFailure("create monitor backend", err)
	}

	model := topology.NewModel(backend)
	if _, err := model.Refresh(); err != nil {
		return startupFailure("enumerate monitors", err)
	}

	pipeline := hook.NewPipeline(model, hook.WindowsLocator{}, hook.WindowsMover{})
	refr := refresher.New(model)

	threadID := winapi.GetCurrentThreadId()

	carrier, err := winapi.NewCarrierWindow(carrierClassName, func(msg uint32) {
		switch msg {
		case winapi.WMDisplayChange, winapi.WMSettingChange:
			refr.Notify()
		case winapi.WMTimer:
			refr.Tick()
		}
	})
	if err != nil {
		return startupFailure("create carrier window", err)
	}
	defer carrier.Destroy()

	if err := carrier.SetTimer(refreshTimerID, uint32(cfg.RefreshInterval.Milliseconds())); err != nil {
		return startupFailure("arm refresh timer", err)
	}
	defer carrier.KillTimer(refreshTimerID)

	if err := winapi.InstallMouseHook(func(pt winapi.POINT, injected bool) bool {
		action := pipeline.HandleEvent(geometry.Point{X: pt.X, Y: pt.Y}, injected)
		return action == hook.Suppress
	}); err != nil {
		return startupFailure("install mouse hook", err)
	}
	defer winapi.UninstallMouseHook()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		logger.Info("dispatcher: interrupt received, shutting down")
		if err := winapi.PostQuitMessageToThread(threadID); err != nil {
			logger.Errorf("dispatcher: failed to post quit to dispatcher thread: %v", err)
		}
	}()

	logger.Infof("dispatcher: running with %d monitor(s)", len(model.Current().Monitors))
	exitCode := winapi.RunMessageLoop()
	logger.Info("dispatcher: shut down cleanly")
	return exitCode
}

func startupFailure(step string, err error) int {
	fmt.Fprintf(os.Stdout, "cursorwarp: startup failed: %s: %v\n", step, err)
	return 1
}
