// Package summarizer runs an external command to condense raw context.
package summarizer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// PromptEnvVar carries the system prompt to the summarizer command.
	PromptEnvVar = "SECTX_SYSTEM_PROMPT"
	// PromptPlaceholder in a command argument is replaced by the system prompt.
	PromptPlaceholder = "{{system_prompt}}"

	// waitDelay bounds how long output pipes may outlive a killed command.
	waitDelay = 2 * time.Second
)

var (
	errEmptyOutput = zerr.New("summarizer produced no output")
	errTimeout     = zerr.New("summarizer timed out")
	errCommand     = zerr.New("summarizer command failed")
)

var (
	_ ports.SummarizerFactory = (*Runner)(nil)
	_ ports.Summarizer        = (*Command)(nil)
)

// Runner builds command summarizers that report stderr through a logger.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// For returns a summarizer running cfg.Command.
func (r *Runner) For(cfg domain.SummarizerConfig) ports.Summarizer {
	return &Command{cfg: cfg, logger: r.logger}
}

// Command is a summarizer backed by one external command. The raw context
// is written to its stdin and the summary is read from its stdout.
type Command struct {
	cfg    domain.SummarizerConfig
	logger ports.Logger
}

// Summarize runs the command and returns its trimmed stdout. Empty output
// is an error.
func (c *Command) Summarize(ctx context.Context, rawContext, systemPrompt string) (string, error) {
	if len(c.cfg.Command) == 0 {
		return "", domain.ErrSummarizerNotConfigured
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(c.cfg.Command)-1)
	for _, a := range c.cfg.Command[1:] {
		args = append(args, strings.ReplaceAll(a, PromptPlaceholder, systemPrompt))
	}

	cmd := exec.CommandContext(ctx, c.cfg.Command[0], args...) //nolint:gosec // user provided command
	cmd.Env = append(os.Environ(), PromptEnvVar+"="+systemPrompt)
	cmd.Stdin = strings.NewReader(rawContext)
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	stderr := &logWriter{logger: c.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	_ = stderr.Close()
	if err != nil {
		if ctx.Err() != nil {
			return "", zerr.With(zerr.Wrap(ctx.Err(), errTimeout.Error()), "timeout", c.cfg.Timeout.String())
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", zerr.With(zerr.Wrap(err, errCommand.Error()), "exit_code", exitCode)
	}

	summary := strings.TrimSpace(stdout.String())
	if summary == "" {
		return "", errEmptyOutput
	}
	return summary, nil
}

// logWriter forwards complete stderr lines to the logger as warnings.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.logger == nil || msg == "" {
		return
	}
	w.logger.Warn("summarizer: " + msg)
}
