package screenlock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int {
	return m.pid
}

func (m *mockProcess) PPid() int {
	return 0
}

func (m *mockProcess) Executable() string {
	return m.executable
}

// withProcesses makes the listed pids look like running processes.
func withProcesses(t *testing.T, running map[int]string) {
	t.Helper()
	origFind, origPid := findProcessFunc, getpidFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		exe, ok := running[pid]
		if !ok {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: exe}, nil
	}
	t.Cleanup(func() {
		findProcessFunc = origFind
		getpidFunc = origPid
	})
}

func TestPath(t *testing.T) {
	tests := []struct {
		screen string
		want   string
	}{
		{"", "saver-unbound.lock"},
		{"69733382", "saver-69733382.lock"},
		{"DELL U2720Q", "saver-DELL_U2720Q.lock"},
		{"../etc", "saver-.._etc.lock"},
	}
	for _, tt := range tests {
		if got := filepath.Base(Path("/tmp", tt.screen)); got != tt.want {
			t.Errorf("Path(%q) = %q, want %q", tt.screen, got, tt.want)
		}
	}
}

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, map[int]string{100: "simpleclock"})
	getpidFunc = func() int { return 100 }

	lock, err := Acquire(dir, "1", "instance-a")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	content, err := os.ReadFile(lock.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "100|instance-a|1" {
		t.Errorf("lockfile content = %q", content)
	}

	if _, err := Acquire(dir, "1", "instance-b"); !errors.Is(err, ErrHeld) {
		t.Errorf("second Acquire() error = %v, want ErrHeld", err)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(lock.Path); !os.IsNotExist(err) {
		t.Error("lockfile still present after release")
	}
}

func TestAcquireReplacesStaleLock(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, map[int]string{200: "bash"})
	getpidFunc = func() int { return 300 }

	path := Path(dir, "1")
	if err := os.WriteFile(path, []byte("999|dead|1"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Acquire(dir, "1", "fresh"); err != nil {
		t.Fatalf("Acquire() over dead pid error = %v", err)
	}

	// pid reused by an unrelated program
	if err := os.WriteFile(path, []byte("200|other|1"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Acquire(dir, "1", "fresh"); err != nil {
		t.Fatalf("Acquire() over foreign pid error = %v", err)
	}

	if err := os.WriteFile(path, []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Acquire(dir, "1", "fresh"); err != nil {
		t.Fatalf("Acquire() over malformed lock error = %v", err)
	}
}

func TestReleaseLeavesForeignLock(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, nil)
	getpidFunc = func() int { return 100 }

	lock, err := Acquire(dir, "", "mine")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(lock.Path, []byte("101|theirs|"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := lock.Release(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(lock.Path); err != nil {
		t.Error("foreign lockfile was removed")
	}

	var nilLock *Lock
	if err := nilLock.Release(); err != nil {
		t.Errorf("nil Release() error = %v", err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, map[int]string{10: "simpleclock", 11: "simpleclock", 12: "vim"})

	files := map[string]string{
		Path(dir, "2"): "11|b|2",
		Path(dir, "1"): "10|a|1",
		Path(dir, "3"): "12|c|3",
		Path(dir, "4"): "13|d|4",
		Path(dir, "5"): "not a lock",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Screen != "1" || entries[1].Screen != "2" {
		t.Errorf("unexpected order: %+v", entries)
	}
	if entries[0].InstanceID != "a" || entries[0].PID != 10 {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestListMissingDir(t *testing.T) {
	entries, err := List(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
