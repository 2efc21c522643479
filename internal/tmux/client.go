package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
)

var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

// controlClient returns the shared control-mode connection for socketPath,
// dialing a new one when the socket changed or the previous one was dropped.
func controlClient(socketPath string) (tmuxClient, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil && cachedSocket == socketPath {
		return cachedClient, nil
	}
	if cachedClient != nil {
		_ = cachedClient.Close()
		cachedClient = nil
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, err
	}
	cachedClient = client
	cachedSocket = socketPath
	return client, nil
}

// dropClient forgets a connection that returned an error so the next query
// redials instead of reusing a dead control client.
func dropClient(client tmuxClient) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient == nil || cachedClient != client {
		return
	}
	_ = cachedClient.Close()
	cachedClient = nil
	cachedSocket = ""
}

// Shutdown closes the shared control-mode connection, if any.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// ResolveSocketPath picks the server socket: the flag, then
// TMUX_PANE_MOVER_SOCKET, then the socket of the enclosing session from $TMUX,
// and finally tmux's own default location.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_PANE_MOVER_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
