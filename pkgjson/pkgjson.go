// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package pkgjson

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/socketsecurity/socketlib/fsutil"
)

// maxManifestSize caps how large a package.json Load will read. Real
// manifests are a few kilobytes; anything near this limit is malformed or
// hostile.
const maxManifestSize = 8 << 20

// PackageJSON is a normalized package.json manifest. Fields not modeled here
// survive a Parse/Serialize round trip untouched.
type PackageJSON struct {
	Name        string
	Version     string
	Description string
	Private     bool

	// Bin maps command name to script path. The string form of "bin" is
	// normalized to a single entry keyed by the unscoped package name.
	Bin map[string]string

	Scripts              map[string]string
	Dependencies         map[string]string
	DevDependencies      map[string]string
	PeerDependencies     map[string]string
	OptionalDependencies map[string]string

	// raw holds every top-level field as parsed, for round-tripping.
	raw map[string]json.RawMessage
}

// Parse decodes and normalizes a package.json manifest.
func Parse(data []byte) (*PackageJSON, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	p := &PackageJSON{raw: raw}

	if err := decodeString(raw, "name", &p.Name); err != nil {
		return nil, err
	}
	if err := decodeString(raw, "version", &p.Version); err != nil {
		return nil, err
	}
	if err := decodeString(raw, "description", &p.Description); err != nil {
		return nil, err
	}
	if msg, ok := raw["private"]; ok {
		if err := json.Unmarshal(msg, &p.Private); err != nil {
			return nil, fmt.Errorf("invalid \"private\" field: %w", err)
		}
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Version = strings.TrimSpace(p.Version)

	bin, err := decodeBin(raw, p.Name)
	if err != nil {
		return nil, err
	}
	p.Bin = bin

	for field, target := range map[string]*map[string]string{
		"scripts":              &p.Scripts,
		"dependencies":         &p.Dependencies,
		"devDependencies":      &p.DevDependencies,
		"peerDependencies":     &p.PeerDependencies,
		"optionalDependencies": &p.OptionalDependencies,
	} {
		m, err := decodeStringMap(raw, field)
		if err != nil {
			return nil, err
		}
		*target = m
	}

	return p, nil
}

// Load reads and parses the package.json at path.
func Load(path string) (*PackageJSON, error) {
	data, err := fsutil.ReadFileCapped(path, maxManifestSize)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// UnscopedName strips the scope from an npm package name:
// "@socketsecurity/cli" becomes "cli". Unscoped names pass through.
func UnscopedName(name string) string {
	if strings.HasPrefix(name, "@") {
		if i := strings.Index(name, "/"); i >= 0 {
			return name[i+1:]
		}
	}
	return name
}

// Serialize renders the manifest as indented JSON with a trailing newline,
// the way npm writes package.json. Normalized fields replace their raw
// counterparts; unmodeled fields are emitted as parsed.
func (p *PackageJSON) Serialize() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.raw))
	for k, v := range p.raw {
		out[k] = v
	}

	setField := func(key string, value any, omitEmpty bool) error {
		if omitEmpty {
			delete(out, key)
			switch v := value.(type) {
			case string:
				if v == "" {
					return nil
				}
			case map[string]string:
				if len(v) == 0 {
					return nil
				}
			case bool:
				if !v {
					return nil
				}
			}
		}
		msg, err := json.Marshal(value)
		if err != nil {
			return err
		}
		out[key] = msg
		return nil
	}

	fields := []struct {
		key       string
		value     any
		omitEmpty bool
	}{
		{"name", p.Name, false},
		{"version", p.Version, false},
		{"description", p.Description, true},
		{"private", p.Private, true},
		{"bin", p.Bin, true},
		{"scripts", p.Scripts, true},
		{"dependencies", p.Dependencies, true},
		{"devDependencies", p.DevDependencies, true},
		{"peerDependencies", p.PeerDependencies, true},
		{"optionalDependencies", p.OptionalDependencies, true},
	}
	for _, f := range fields {
		if err := setField(f.key, f.value, f.omitEmpty); err != nil {
			return nil, fmt.Errorf("failed to serialize %q: %w", f.key, err)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save serializes the manifest and writes it to path atomically.
func (p *PackageJSON) Save(path string) error {
	data, err := p.Serialize()
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, data, 0o644)
}

func decodeString(raw map[string]json.RawMessage, field string, target *string) error {
	msg, ok := raw[field]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(msg, target); err != nil {
		return fmt.Errorf("invalid %q field: %w", field, err)
	}
	return nil
}

func decodeStringMap(raw map[string]json.RawMessage, field string) (map[string]string, error) {
	msg, ok := raw[field]
	if !ok {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(msg, &m); err != nil {
		return nil, fmt.Errorf("invalid %q field: %w", field, err)
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

// decodeBin normalizes "bin": a bare string becomes {unscoped-name: path}.
func decodeBin(raw map[string]json.RawMessage, name string) (map[string]string, error) {
	msg, ok := raw["bin"]
	if !ok {
		return map[string]string{}, nil
	}

	var single string
	if err := json.Unmarshal(msg, &single); err == nil {
		if name == "" {
			return nil, fmt.Errorf("string \"bin\" requires a package name")
		}
		return map[string]string{UnscopedName(name): single}, nil
	}

	var m map[string]string
	if err := json.Unmarshal(msg, &m); err != nil {
		return nil, fmt.Errorf("invalid \"bin\" field: %w", err)
	}
	return m, nil
}
