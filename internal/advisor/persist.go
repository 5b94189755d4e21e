package advisor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists network weights as a JSON file, separate from the
// main database so a data reset can leave the learned model alone.
type FileStore struct {
	Path string
}

// Load reads the weights file. Missing or corrupt files return (nil, nil)
// with the corruption reported through the error only when the file exists
// but cannot be decoded into a sane shape.
func (s FileStore) Load() (*Network, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	var n Network
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decoding model file: %w", err)
	}
	if !n.valid() {
		return nil, fmt.Errorf("model file %s has inconsistent shapes", s.Path)
	}
	return &n, nil
}

// Save writes the weights atomically: temp file in the same directory,
// then rename. A failure anywhere leaves the prior file untouched.
func (s FileStore) Save(n *Network) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating model dir: %w", err)
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "model-*.json")
	if err != nil {
		return fmt.Errorf("creating temp model file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp model file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("committing model file: %w", err)
	}
	return nil
}
