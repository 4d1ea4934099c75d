package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrManifestRequired indicates a manifest payload is missing.
	ErrManifestRequired = errors.New("manifest required")
	// ErrManifestInvalid indicates the manifest payload is not a well formed document.
	ErrManifestInvalid = errors.New("manifest invalid")
)

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrManifestRequired)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrManifestRequired, err)
	}

	return Parse(data)
}

// Parse decodes a single manifest document from data.
func Parse(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrManifestRequired)
	}

	var m Manifest
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content", ErrManifestInvalid)
	}

	return &m, nil
}
