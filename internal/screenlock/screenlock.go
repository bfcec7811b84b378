// Package screenlock keeps at most one live saver instance per display using
// lockfiles of the form "pid|instance|screen".
package screenlock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/simpleclock/internal/constants"
	"github.com/julianstephens/simpleclock/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid

	// ErrHeld is returned when another live instance owns the screen.
	ErrHeld = errors.New("screen is already held by a running instance")
)

// Entry describes one lockfile.
type Entry struct {
	PID        int
	InstanceID string
	Screen     string
	Path       string
}

// Lock is a held screen lock.
type Lock struct {
	Entry
}

// Dir returns the lockfile directory under configDir.
func Dir(configDir string) string {
	return filepath.Join(configDir, constants.LockDirName)
}

// Path returns the lockfile path for screen.
func Path(dir, screen string) string {
	return filepath.Join(dir, constants.LockFilePrefix+fileKey(screen)+constants.LockFileSuffix)
}

func fileKey(screen string) string {
	screen = strings.TrimSpace(screen)
	if screen == "" {
		return constants.UnboundScreenKey
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, screen)
}

// Acquire claims screen for instanceID. A lockfile left behind by a dead
// process is replaced.
func Acquire(dir, screen, instanceID string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	path := Path(dir, screen)
	if existing, err := readEntry(path); err == nil {
		if err := validateHolder(existing); err == nil {
			return nil, fmt.Errorf("%w: %s (pid %d)", ErrHeld, displayName(existing.Screen), existing.PID)
		}
		logger.Debug("Removing stale screen lock", "path", path, "pid", existing.PID)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale lock: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Debug("Replacing unreadable screen lock", "path", path, "error", err)
		_ = os.Remove(path)
	}

	entry := Entry{PID: getpidFunc(), InstanceID: instanceID, Screen: screen, Path: path}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrHeld, displayName(screen))
		}
		return nil, fmt.Errorf("failed to create lockfile: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(encode(entry)); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	logger.Debug("Acquired screen lock", "path", path, "instance", instanceID)
	return &Lock{Entry: entry}, nil
}

// Release removes the lockfile if it still belongs to this lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	current, err := readEntry(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if current.InstanceID != l.InstanceID {
		return nil
	}
	if err := os.Remove(l.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// List returns the lockfiles in dir whose holders are still running.
func List(dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, constants.LockFilePrefix+"*"+constants.LockFileSuffix))
	if err != nil {
		return nil, err
	}

	var live []Entry
	for _, path := range paths {
		entry, err := readEntry(path)
		if err != nil {
			logger.Debug("Skipping unreadable screen lock", "path", path, "error", err)
			continue
		}
		if err := validateHolder(entry); err != nil {
			logger.Debug("Skipping stale screen lock", "path", path, "error", err)
			continue
		}
		live = append(live, entry)
	}

	sort.Slice(live, func(i, j int) bool { return live[i].Screen < live[j].Screen })
	return live, nil
}

func encode(e Entry) string {
	return fmt.Sprintf("%d|%s|%s", e.PID, e.InstanceID, e.Screen)
}

func readEntry(path string) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}

	parts := strings.SplitN(strings.TrimSpace(string(content)), "|", 3)
	if len(parts) != 3 {
		return Entry{}, errors.New("lockfile is malformed")
	}

	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Entry{}, errors.New("invalid process ID in lockfile")
	}
	if strings.TrimSpace(parts[1]) == "" {
		return Entry{}, errors.New("instance ID in lockfile is empty")
	}

	return Entry{PID: pid, InstanceID: parts[1], Screen: parts[2], Path: path}, nil
}

func validateHolder(e Entry) error {
	process, err := findProcessFunc(e.PID)
	if err != nil || process == nil {
		return fmt.Errorf("process %d not running", e.PID)
	}
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return fmt.Errorf("process with PID %d is not %s (is %s)", e.PID, constants.AppName, process.Executable())
	}
	return nil
}

func displayName(screen string) string {
	if screen == "" {
		return constants.UnboundScreenKey
	}
	return screen
}
