package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps one <date>.json file per record under a base directory.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) path(date string) (string, error) {
	if date == "" {
		return "", errors.New("empty date key")
	}
	return filepath.Join(s.base, filepath.Clean(date)+".json"), nil
}

func (s *FSStore) Get(_ context.Context, date string) (json.RawMessage, error) {
	p, err := s.path(date)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(b), nil
}

func (s *FSStore) Put(_ context.Context, date string, record json.RawMessage) error {
	p, err := s.path(date)
	if err != nil {
		return err
	}
	return os.WriteFile(p, record, 0o644)
}

func (s *FSStore) PutIfAbsent(ctx context.Context, date string, record json.RawMessage) (json.RawMessage, bool, error) {
	p, err := s.path(date)
	if err != nil {
		return nil, false, err
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			existing, gerr := s.Get(ctx, date)
			if gerr != nil {
				return nil, false, gerr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	defer f.Close()
	if _, err := f.Write(record); err != nil {
		return nil, false, err
	}
	return record, true, nil
}

func (s *FSStore) List(_ context.Context) (map[string]json.RawMessage, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(s.base, name))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(name, ".json")] = json.RawMessage(b)
	}
	return out, nil
}
