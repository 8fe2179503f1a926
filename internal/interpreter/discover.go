package interpreter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gammazero/workerpool"

	"github.com/ActiveState/pylink/internal/logging"
)

// MaxConcurrency caps how many interpreters are probed at once
const MaxConcurrency = 4

func executablePattern() string {
	if runtime.GOOS == "windows" {
		return "python{,[0-9]*}.exe"
	}
	return "python{,[0-9]*}"
}

// Discover lists python executables found in dirs, in directory order. Entries resolving to the same file are
// reported once.
func Discover(dirs []string) []string {
	pattern := executablePattern()
	seen := map[string]bool{}
	var result []string

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
		if err != nil {
			logging.Debug("Could not glob %s: %v", dir, err)
			continue
		}

		for _, match := range matches {
			// python3-config, python3.11-dbg-config and friends are not interpreters
			if strings.Contains(match, "-") {
				continue
			}

			exe := filepath.Join(dir, match)
			if !isExecutable(exe) {
				continue
			}

			key := exe
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				key = resolved
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, exe)
		}
	}

	return result
}

func isExecutable(exe string) bool {
	stat, err := os.Stat(exe)
	if err != nil || stat.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return stat.Mode()&0111 != 0
}

// ProbeAll probes every executable concurrently. The result keeps the order of exes and omits executables that
// did not answer.
func ProbeAll(ctx context.Context, exes []string) []*Info {
	infos := make([]*Info, len(exes))

	wp := workerpool.New(MaxConcurrency)
	var mu sync.Mutex
	for i, exe := range exes {
		i, exe := i, exe
		wp.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			info, err := Probe(ctx, exe)
			if err != nil {
				logging.Debug("Probing %s failed: %v", exe, err)
				return
			}
			mu.Lock()
			infos[i] = info
			mu.Unlock()
		})
	}
	wp.StopWait()

	result := make([]*Info, 0, len(infos))
	for _, info := range infos {
		if info != nil {
			result = append(result, info)
		}
	}
	return result
}
