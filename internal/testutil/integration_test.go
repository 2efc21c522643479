package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOverlayRendersWindowAndQuits(t *testing.T) {
	bin := BuildBinary(t)
	socket, cleanup, logDir := StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		AssertNoServerCrash(t, logDir)
	})

	scriptDir := t.TempDir()
	exitFile := filepath.Join(scriptDir, "exit-code")
	scriptPath := filepath.Join(scriptDir, "run.sh")
	script := "#!/bin/sh\n" +
		"\"$MOVER_BIN\" --socket \"$MOVER_SOCKET\" --log-file \"$MOVER_LOG\" > /dev/null 2>&1\n" +
		"printf '%s' $? > \"$MOVER_EXIT\"\n" +
		"sleep 300\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write launcher script: %v", err)
	}

	neighbour := PaneID(t, socket, SessionName+":0.0")
	overlay := SplitPane(t, socket, SessionName+":0", []string{
		"MOVER_BIN=" + bin,
		"MOVER_SOCKET=" + socket,
		"MOVER_EXIT=" + exitFile,
		"MOVER_LOG=" + filepath.Join(scriptDir, "mover.log"),
	}, scriptPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	frame := WaitForFrame(t, ctx, socket, overlay, exitFile, neighbour, overlay, "quit")
	if !strings.Contains(frame, "╭") {
		t.Fatalf("expected pane boxes in frame:\n%s", frame)
	}

	if got := PaneTitle(t, socket, overlay); got != "tmux-pane-mover" {
		t.Fatalf("expected overlay title, got %q", got)
	}

	if err := Tmux(socket, "send-keys", "-t", overlay, "q"); err != nil {
		t.Fatalf("send-keys failed: %v", err)
	}
	deadline := time.Now().Add(3 * time.Second)
	for ReadExitCode(exitFile) == "" {
		if time.Now().After(deadline) {
			t.Fatalf("tmux-pane-mover did not exit after q")
		}
		time.Sleep(50 * time.Millisecond)
	}
	if code := ReadExitCode(exitFile); code != "0" {
		t.Fatalf("expected exit code 0, got %s", code)
	}
	if got := PaneTitle(t, socket, overlay); got == "tmux-pane-mover" {
		t.Fatalf("pane title was not restored")
	}
}
