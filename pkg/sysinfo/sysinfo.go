// Package sysinfo reports facts about the host system, and maps them to the platform tags build tools use to
// select platform specific configuration.
package sysinfo

import (
	"runtime"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/ActiveState/pylink/internal/errs"
)

var sysinfoCache *cache.Cache = cache.New(cache.NoExpiration, cache.NoExpiration)

// Cache keys used for storing/retrieving computed system information.
const (
	osVersionInfoCacheKey = "osVersionInfo"
)

// Platform tags understood by the linkage resolver. Any other tag is treated like Posix.
const (
	Win32  = "win32"
	Cygwin = "cygwin"
	Irix   = "irix"
	Darwin = "darwin"
	Aix    = "aix"
	SunOS  = "sunos"
	Posix  = "posix"
)

// OsInfo represents an OS returned by OS().
type OsInfo int

const (
	// Linux represents the Linux operating system.
	Linux OsInfo = iota
	// Windows represents the Windows operating system.
	Windows
	// Mac represents the Macintosh operating system.
	Mac
	// UnknownOs represents an unknown operating system.
	UnknownOs
)

func (i OsInfo) String() string {
	switch i {
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	case Mac:
		return "MacOS"
	default:
		return "Unknown"
	}
}

// OSVersionInfo represents an OS version returned by OSVersion().
type OSVersionInfo struct {
	Version string `locale:"sysinfo_os_version,OS Version"`                 // raw version string
	Name    string `locale:"sysinfo_os_name,OS Name"`                       // free-form name string (varies by OS)
	Family  string `locale:"sysinfo_os_family,OS Family" json:",omitempty"` // platform family, eg. debian
}

var (
	overrideMu   sync.Mutex
	goosOverride string
)

// SetGOOSOverride makes the package behave as if it were running on the given GOOS. An empty string clears it.
// Mainly for testing.
func SetGOOSOverride(goos string) {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	goosOverride = goos
}

func goos() string {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	if goosOverride != "" {
		return goosOverride
	}
	return runtime.GOOS
}

// OS returns the system's OS
func OS() OsInfo {
	switch goos() {
	case "linux":
		return Linux
	case "windows":
		return Windows
	case "darwin":
		return Mac
	default:
		return UnknownOs
	}
}

// Architecture returns the system's architecture (e.g. "amd64", "386", etc.).
func Architecture() string {
	return runtime.GOARCH
}

// PlatformTag returns the build tool platform tag for the host
func PlatformTag() string {
	switch goos() {
	case "windows":
		return Win32
	case "darwin":
		return Darwin
	case "aix":
		return Aix
	case "solaris", "illumos":
		return SunOS
	default:
		return Posix
	}
}

// OSVersion returns the host OS version. The result is cached for the lifetime of the process.
func OSVersion() (*OSVersionInfo, error) {
	if v, found := sysinfoCache.Get(osVersionInfoCacheKey); found {
		return v.(*OSVersionInfo), nil
	}

	platform, family, version, err := host.PlatformInformation()
	if err != nil {
		return nil, errs.Wrap(err, "Could not detect platform information")
	}

	info := &OSVersionInfo{
		Version: version,
		Name:    platform,
		Family:  family,
	}
	sysinfoCache.Set(osVersionInfoCacheKey, info, cache.NoExpiration)
	return info, nil
}
