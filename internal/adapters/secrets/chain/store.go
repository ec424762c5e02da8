package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/verbtrainer/internal/adapters/secrets/file"
	passstore "github.com/bnema/verbtrainer/internal/adapters/secrets/pass"
	"github.com/bnema/verbtrainer/internal/ports"
)

var errNoStores = errors.New("secret chain needs at least one store")

// Store tries each backend in order. Reads return the first hit, writes
// land in the first backend that accepts them, deletes reach every backend.
type Store struct {
	stores []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(stores ...ports.SecretStore) (*Store, error) {
	kept := make([]ports.SecretStore, 0, len(stores))
	for _, store := range stores {
		if store != nil {
			kept = append(kept, store)
		}
	}
	if len(kept) == 0 {
		return nil, errNoStores
	}
	return &Store{stores: kept}, nil
}

// NewPassFirstWithFileFallback prefers pass and falls back to token files
// under fileRoot when pass is missing or has no entry.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passstore.DefaultPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for _, store := range s.stores {
		value, err := store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldStop(err) {
			return "", err
		}
		errs = append(errs, err)
	}

	if allNotFound(errs) {
		return "", fmt.Errorf("secret %q: %w", key, ports.ErrSecretNotFound)
	}
	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for _, store := range s.stores {
		err := store.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if shouldStop(err) {
			return err
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, store := range s.stores {
		err := store.Delete(ctx, key)
		if err == nil || errors.Is(err, passstore.ErrUnavailable) {
			continue
		}
		if shouldStop(err) {
			return err
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
	}
	return nil
}

func shouldStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// allNotFound treats an unavailable backend like an empty one.
func allNotFound(errs []error) bool {
	for _, err := range errs {
		if !errors.Is(err, ports.ErrSecretNotFound) && !errors.Is(err, passstore.ErrUnavailable) {
			return false
		}
	}
	return true
}
