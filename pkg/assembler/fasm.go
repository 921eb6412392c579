package assembler

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// DefaultTool is the flat assembler, which emits raw binaries by default.
const DefaultTool = "fasm"

type fasm struct {
	tool string
}

// NewFasm returns an Assembler that runs `tool <src> <dst>`. An empty tool
// selects DefaultTool.
func NewFasm(tool string) Assembler {
	if tool == "" {
		tool = DefaultTool
	}
	return &fasm{tool: tool}
}

func (a *fasm) Tool() string {
	return a.tool
}

// Assemble blocks until the tool exits.
func (a *fasm) Assemble(src, dst string) (string, error) {
	cmd := exec.Command(a.tool, src, dst)
	output, err := cmd.CombinedOutput()
	if err != nil {
		execErr := &ExecError{
			Args:     cmd.Args,
			ExitCode: -1,
			Output:   string(output),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		return "", execErr
	}
	return string(output), nil
}

// ExecError reports a failed assembler run.
type ExecError struct {
	Args     []string // command line, tool first
	ExitCode int      // -1 when the tool could not be started
	Output   string   // whatever the tool printed before failing
	Err      error
}

func (e *ExecError) Error() string {
	var b strings.Builder
	b.WriteString(strings.Join(e.Args, " "))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString("\nOutput: ")
		b.WriteString(out)
	}
	return b.String()
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
