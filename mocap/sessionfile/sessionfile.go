package sessionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-mocap/mocap"
)

var (
	// ErrMalformed is returned for documents whose rows do not match their
	// label lists.
	ErrMalformed = errors.New("sessionfile: malformed document")
	// ErrUnsupportedVersion is returned for documents of another version.
	ErrUnsupportedVersion = errors.New("sessionfile: unsupported version")
)

// Decode reads one session document from r and validates it.
func Decode(r io.Reader) (*mocap.Session, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("sessionfile: parse: %w", err)
	}

	s, err := doc.session()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes s to w as one JSON document.
func Encode(w io.Writer, s *mocap.Session) error {
	if s == nil || s.Markers == nil || s.Analog == nil {
		return fmt.Errorf("%w: marker and analog grids are required", mocap.ErrInvalidSession)
	}
	if err := json.NewEncoder(w).Encode(fromSession(s)); err != nil {
		return fmt.Errorf("sessionfile: encode: %w", err)
	}
	return nil
}

// Load reads and validates the session stored at path.
func Load(path string) (*mocap.Session, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("sessionfile: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write stores s at path. The document is written to a temporary file in
// the same directory and renamed into place, so path either keeps its old
// content or holds the complete new document.
func Write(s *mocap.Session, path string) (err error) {
	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("sessionfile: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Encode(tmp, s); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sessionfile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sessionfile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("sessionfile: %w", err)
	}
	return nil
}
