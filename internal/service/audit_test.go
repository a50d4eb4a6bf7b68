package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestStartAuditRecordStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_starts.log")
	audit := NewStartAudit(path, zap.NewNop())

	if got := audit.RecordStart(42, "arman"); got != 1 {
		t.Errorf("first RecordStart = %d, want 1", got)
	}
	if got := audit.RecordStart(43, "ani"); got != 2 {
		t.Errorf("second RecordStart = %d, want 2", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("log has %d lines, want 2:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "User arman (ID: 42)") || !strings.Contains(lines[0], "Total: 1") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "User ani (ID: 43)") || !strings.Contains(lines[1], "Total: 2") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestStartAuditUnwritablePath(t *testing.T) {
	// A write failure must not break the visit counter.
	audit := NewStartAudit(filepath.Join(t.TempDir(), "absent", "bot_starts.log"), zap.NewNop())

	if got := audit.RecordStart(1, "arman"); got != 1 {
		t.Errorf("RecordStart = %d, want 1 despite the write failure", got)
	}
	if got := audit.RecordStart(1, "arman"); got != 2 {
		t.Errorf("RecordStart = %d, want 2 despite the write failure", got)
	}
}
