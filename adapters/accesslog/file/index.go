package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rendau/rester/adapters/accesslog"
)

// St appends one JSON line per record.
type St struct {
	path string
	mu   sync.Mutex
}

func New(path string) *St {
	if path == "" {
		path = accesslog.DefaultFilePath
	}

	return &St{path: path}
}

func (s *St) Path() string {
	return s.path
}

func (s *St) Log(ctx context.Context, rec accesslog.Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	_, err = f.Write(line)
	if cErr := f.Close(); err == nil {
		err = cErr
	}

	return err
}
