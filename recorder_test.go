package fxconvert

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestFileRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	r := OpenFileRecorder(path)
	r.Record("hello")
	r.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading audit log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d audit lines, want start + event + end:\n%s", len(lines), content)
	}

	stamped := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `)
	for _, line := range lines {
		if !stamped.MatchString(line) {
			t.Errorf("audit line missing timestamp prefix: %q", line)
		}
	}
	if !strings.Contains(lines[0], "New session started") {
		t.Errorf("first line = %q, want session start", lines[0])
	}
	if !strings.Contains(lines[1], "hello") {
		t.Errorf("second line = %q, want the recorded event", lines[1])
	}
	if !strings.Contains(lines[2], "Session ended") {
		t.Errorf("last line = %q, want session end", lines[2])
	}
}

func TestFileRecorderAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	r := OpenFileRecorder(path)
	r.Close()
	r = OpenFileRecorder(path)
	r.Close()

	content, _ := os.ReadFile(path)
	if got := strings.Count(string(content), "New session started"); got != 2 {
		t.Errorf("got %d session starts after two sessions, want 2", got)
	}
}

func TestFileRecorderOpenFailure(t *testing.T) {
	// A directory path cannot be opened as a file: writes must degrade to
	// no-ops without panicking.
	r := OpenFileRecorder(t.TempDir())
	r.Record("ignored")
	r.Close()
}

func TestRecorderNeverNilSafe(t *testing.T) {
	var r *FileRecorder
	r.Record("ignored") // nil receiver is a no-op
	r.Close()
}
