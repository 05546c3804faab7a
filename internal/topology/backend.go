package topology

// Backend abstracts the OS-specific monitor enumeration call, the same
// seam the hook package draws around the synthetic cursor move: it lets
// Model's refresh/signature logic be exercised without the real Win32
// calls, and lets non-Windows builds compile.
type Backend interface {
	EnumerateMonitors() ([]Monitor, error)
}
