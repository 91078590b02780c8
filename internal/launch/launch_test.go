package launch

import (
	"runtime"
	"testing"
)

func TestWaitReportsExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	status, err := Wait("sh", "-c", "exit 0")
	if err != nil {
		t.Fatalf("Wait(exit 0): %v", err)
	}
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}

	status, err = Wait("sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("Wait(exit 3): %v", err)
	}
	if status != 3 {
		t.Errorf("status = %d, want 3", status)
	}
}

func TestWaitStartFailure(t *testing.T) {
	if _, err := Wait("definitely-not-a-real-program-4182"); err == nil {
		t.Fatal("Wait: expected error for missing program")
	}
}

func TestReplaceStartFailure(t *testing.T) {
	if err := Replace("definitely-not-a-real-program-4182"); err == nil {
		t.Fatal("Replace: expected error for missing program")
	}
}

func TestOpenCommand(t *testing.T) {
	program, args := openCommand("https://example.com/1", "firefox")
	if program != "firefox" {
		t.Errorf("program = %q, want explicit browser", program)
	}
	if len(args) != 1 || args[0] != "https://example.com/1" {
		t.Errorf("args = %v, want [url]", args)
	}

	program, _ = openCommand("https://example.com/1", "")
	if program == "" {
		t.Error("default opener is empty")
	}
}
