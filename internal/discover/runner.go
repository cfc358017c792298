package discover

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	fsqerrors "github.com/standardbeagle/fsq/internal/errors"
)

// Raw holds the captured streams of one external process run. A non-zero
// exit with output is not an error for fd: partial results plus a stderr
// warning is exactly what callers want to see.
type Raw struct {
	Stdout string
	Stderr string
	// ExitCode is the process exit status; -1 when the process never ran.
	ExitCode int
}

// Runner executes external search binaries with a uniform timeout policy.
// Binary paths come from configuration resolved at startup, never from
// ambient PATH lookups at call time.
type Runner struct {
	FdPath      string
	RgPath      string
	Timeout     time.Duration // overall limit for one discovery or rg run
	ExecTimeout time.Duration // limit for each exec sub-command
}

// Fd runs one fd invocation built from opts.
func (r *Runner) Fd(ctx context.Context, opts Options) (*Raw, error) {
	if r.FdPath == "" {
		return nil, fsqerrors.NewToolError(fsqerrors.ErrorTypeMissingBinary, "discover",
			errors.New("fd/fdfind not found in PATH")).WithBinary("fd")
	}
	return r.run(ctx, "discover", r.FdPath, opts.Args(), r.Timeout)
}

// Rg runs ripgrep over an explicit file list with the given context lines.
func (r *Runner) Rg(ctx context.Context, query string, contextLines int, caseSensitive bool, files []string) (*Raw, error) {
	if r.RgPath == "" {
		return nil, fsqerrors.NewToolError(fsqerrors.ErrorTypeMissingBinary, "search_content",
			errors.New("rg (ripgrep) not found in PATH")).WithBinary("rg")
	}

	args := make([]string, 0, len(files)+6)
	args = append(args, "--no-heading", "--with-filename", "--line-number")
	if contextLines > 0 {
		args = append(args, "--context", strconv.Itoa(contextLines))
	}
	if !caseSensitive {
		args = append(args, "--ignore-case")
	}
	args = append(args, "--", query)
	args = append(args, files...)

	return r.run(ctx, "search_content", r.RgPath, args, r.Timeout)
}

// Shell runs one exec-tool sub-command through the shell with the short
// per-command timeout. The command line already has the target path
// substituted in.
func (r *Runner) Shell(ctx context.Context, cmdline string) (*Raw, error) {
	return r.run(ctx, "exec", "/bin/sh", []string{"-c", cmdline}, r.ExecTimeout)
}

func (r *Runner) run(ctx context.Context, op, binary string, args []string, timeout time.Duration) (*Raw, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		return nil, fsqerrors.NewToolError(fsqerrors.ErrorTypeTimeout, op,
			fmt.Errorf("command timed out after %d seconds", int(timeout.Seconds()))).WithBinary(binary)
	}

	raw := &Raw{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Process ran and exited non-zero: report output plus exit code
			// and let the caller decide what that means for its tool.
			raw.ExitCode = exitErr.ExitCode()
			return raw, nil
		}
		return nil, fsqerrors.NewToolError(fsqerrors.ErrorTypeExec, op, err).WithBinary(binary)
	}

	return raw, nil
}
