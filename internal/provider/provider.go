// Package provider evaluates configured value providers: static literals,
// environment lookups, and shell commands. Shell providers only run when the
// caller explicitly marks the configuration as trusted.
package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrShellNotTrusted is returned when a shell provider is evaluated without
// the configuration being marked trusted.
var ErrShellNotTrusted = errors.New("provider: shell execution is not trusted")

// Provider produces one value for the render context.
type Provider interface {
	// Describe names the provider for diagnostics, e.g. "env:USER".
	Describe() string
	Resolve(ctx context.Context) (string, error)
}

type staticProvider struct {
	value string
}

// Static returns a provider that yields a fixed value.
func Static(value string) Provider {
	return staticProvider{value: value}
}

func (p staticProvider) Describe() string {
	return "static"
}

func (p staticProvider) Resolve(ctx context.Context) (string, error) {
	return p.value, nil
}

type envProvider struct {
	name string
}

// Env returns a provider that reads an environment variable. An unset
// variable is an error rather than an empty value.
func Env(name string) Provider {
	return envProvider{name: name}
}

func (p envProvider) Describe() string {
	return "env:" + p.name
}

func (p envProvider) Resolve(ctx context.Context) (string, error) {
	value, ok := os.LookupEnv(p.name)
	if !ok {
		return "", fmt.Errorf("provider: environment variable %s is not set", p.name)
	}
	return value, nil
}

type shellProvider struct {
	command string
	trusted bool
}

// Shell returns a provider that runs a command and yields its trimmed
// standard output. The command string is split with shell quoting rules and
// executed directly, not through a shell.
func Shell(command string, trusted bool) Provider {
	return shellProvider{command: command, trusted: trusted}
}

func (p shellProvider) Describe() string {
	return "shell:" + p.command
}

func (p shellProvider) Resolve(ctx context.Context) (string, error) {
	if !p.trusted {
		return "", ErrShellNotTrusted
	}
	if ctx == nil {
		ctx = context.Background()
	}

	argv, err := shellquote.Split(p.command)
	if err != nil {
		return "", fmt.Errorf("provider: split shell command: %w", err)
	}
	if len(argv) == 0 {
		return "", errors.New("provider: empty shell command")
	}

	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("provider: run %q: %w: %s", p.command, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("provider: run %q: %w", p.command, err)
	}
	return strings.TrimSpace(string(out)), nil
}
