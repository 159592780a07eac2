// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"sync"
)

// override is one recorded entry in the override table. The zero entry with
// unset=true simulates an absent variable; otherwise value is returned
// verbatim. Absence from the table altogether means "no override", which is a
// distinct state from unset=true.
type override struct {
	value string
	unset bool
}

// The table is process-wide shared mutable state. Go runs tests on multiple
// OS threads, so every read-modify-write is guarded by a single mutex.
var (
	overrideMu sync.Mutex
	overrides  = make(map[string]override)
)

// SetOverride records an override for key. A non-nil value overrides reads of
// key to that string; a nil value records the explicitly-unset state, meaning
// reads of key report the variable as absent even if the real process
// environment defines it. Setting the same key again replaces the prior
// override. The real process environment is never touched.
func SetOverride(key string, value *string) {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	if value == nil {
		overrides[key] = override{unset: true}
		return
	}
	overrides[key] = override{value: *value}
}

// SetOverrideValue records a value override for key.
func SetOverrideValue(key, value string) {
	SetOverride(key, &value)
}

// SetOverrideUnset records an explicitly-unset override for key, so reads of
// key report the variable as absent.
func SetOverrideUnset(key string) {
	SetOverride(key, nil)
}

// ClearOverride removes any override for key, restoring fall-through to the
// real process environment. It is a no-op if key has no override.
func ClearOverride(key string) {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	delete(overrides, key)
}

// ResetOverrides removes all overrides at once. Test suites call this in
// cleanup after every case so no override leaks into the next test.
func ResetOverrides() {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	clear(overrides)
}

// HasOverride reports whether key currently has an override recorded, whether
// a value override or an explicitly-unset one. It returns false only when no
// override was ever set for key, or it has since been cleared or reset.
func HasOverride(key string) bool {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	_, ok := overrides[key]
	return ok
}

// GetValue is the read-through accessor every typed getter uses. If key has
// an override it is returned verbatim; an explicitly-unset override reads as
// ("", false) without consulting the real environment. Otherwise the real
// process environment is read live at call time, never cached, so a real
// environment change between two calls is observable whenever no override is
// present.
func GetValue(key string) (string, bool) {
	overrideMu.Lock()
	o, ok := overrides[key]
	overrideMu.Unlock()
	if ok {
		if o.unset {
			return "", false
		}
		return o.value, true
	}
	return os.LookupEnv(key)
}

// Environ returns a copy of the process environment with the override table
// applied: value overrides replace or add entries, explicitly-unset overrides
// remove them. The result is in the "key=value" form os/exec expects.
func Environ() []string {
	overrideMu.Lock()
	defer overrideMu.Unlock()

	environ := make([]string, 0, len(os.Environ())+len(overrides))
	seen := make(map[string]bool, len(overrides))
	for _, kv := range os.Environ() {
		key := kv
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				key = kv[:i]
				break
			}
		}
		o, ok := overrides[key]
		if !ok {
			environ = append(environ, kv)
			continue
		}
		seen[key] = true
		if o.unset {
			continue
		}
		environ = append(environ, key+"="+o.value)
	}
	for key, o := range overrides {
		if seen[key] || o.unset {
			continue
		}
		environ = append(environ, key+"="+o.value)
	}
	return environ
}

// OverrideReader is a Reader that resolves keys through the override table
// first and falls through to Fallback (OSReader when nil) for keys with no
// override recorded.
type OverrideReader struct {
	Fallback Reader
}

// Getenv returns the override-aware value of key, or the empty string when absent.
func (r *OverrideReader) Getenv(key string) string {
	value, _ := r.LookupEnv(key)
	return value
}

// LookupEnv reports the override-aware value and presence of key.
func (r *OverrideReader) LookupEnv(key string) (string, bool) {
	overrideMu.Lock()
	o, ok := overrides[key]
	overrideMu.Unlock()
	if ok {
		if o.unset {
			return "", false
		}
		return o.value, true
	}
	if r.Fallback != nil {
		return r.Fallback.LookupEnv(key)
	}
	return os.LookupEnv(key)
}

var defaultReader Reader = &OverrideReader{}

// DefaultReader returns the process-wide override-aware Reader. Packages that
// accept a Reader as a dependency use this as their default.
func DefaultReader() Reader {
	return defaultReader
}
