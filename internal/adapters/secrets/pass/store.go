package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/verbtrainer/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

const DefaultPrefix = "verbtrainer"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store reads and writes entries of the pass password manager under a
// common prefix. Only the first line of an entry is the secret.
type Store struct {
	prefix string
	run    runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: strings.Trim(prefix, "/"), run: runPassCommand}
}

func (s *Store) entry(key string) string {
	key = strings.Trim(strings.TrimSpace(key), "/")
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", entry)
	if err != nil {
		return formatError("insert", entry, err, stderr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entry := s.entry(key)
	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return "", fmt.Errorf("pass entry %q: %w", entry, ports.ErrSecretNotFound)
		}
		return "", formatError("show", entry, err, stderr)
	}

	first, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(first, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := s.entry(key)
	_, stderr, err := s.run(ctx, "", "rm", "-f", entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return nil
		}
		return formatError("rm", entry, err, stderr)
	}
	return nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}
	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
