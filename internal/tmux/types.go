package tmux

import (
	"os/exec"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}
)

// tmuxClient is the subset of the control-mode client used for queries.
type tmuxClient interface {
	DisplayMessage(target, format string) (string, error)
	ListPanesFormat(target, filter, format string) ([]string, error)
	Close() error
}

type commander interface {
	Run() error
	Output() ([]byte, error)
	CombinedOutput() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

func (r realCommander) CombinedOutput() ([]byte, error) {
	return r.cmd.CombinedOutput()
}
