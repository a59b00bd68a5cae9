// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/venture-portal/models"
	"github.com/pelletier/go-toml/v2"
)

const (
	extTOML = ".toml"
	extJSON = ".json"
)

// IsContentFile reports whether path names a seedable slot file. Hidden
// files are skipped.
func IsContentFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case extTOML, extJSON:
		return true
	default:
		return false
	}
}

// KeyFromPath returns the slot key for a content file: its lower-cased stem.
func KeyFromPath(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// LoadFile decodes one content file.
func LoadFile(path string) (models.ContentDocument, error) {
	key := KeyFromPath(path)
	if key == "" {
		return models.ContentDocument{}, fmt.Errorf("%w: %s", ErrEmptyKey, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.ContentDocument{}, fmt.Errorf("read %s: %w", path, err)
	}

	payload, err := decode(filepath.Ext(path), data)
	if err != nil {
		return models.ContentDocument{}, fmt.Errorf("%w %s: %w", ErrDecodingFile, path, err)
	}

	return models.ContentDocument{Key: key, Payload: payload}, nil
}

// LoadDir decodes every content file directly inside dir, ordered by key.
// Sub-directories are not walked.
func LoadDir(dir string) ([]models.ContentDocument, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	docs := make([]models.ContentDocument, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsContentFile(e.Name()) {
			continue
		}
		doc, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[doc.Key]; dup {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateKey, prev, e.Name())
		}
		seen[doc.Key] = e.Name()
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Key < docs[j].Key })
	return docs, nil
}

func decode(ext string, data []byte) (models.ContentPayload, error) {
	payload := models.ContentPayload{}

	switch strings.ToLower(ext) {
	case extTOML:
		if err := toml.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	case extJSON:
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return payload, nil
}
