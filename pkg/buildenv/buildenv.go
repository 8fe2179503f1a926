// Package buildenv models the configuration object a build tool hands to its extensions: an insertion ordered
// mapping from keys to either a scalar string or an ordered sequence of strings.
//
// Sequence values are append only from the point of view of extensions. Order matters, compilers search include
// and library paths in the order they are given.
package buildenv

import (
	"strings"

	"github.com/ActiveState/pylink/internal/logging"
)

// Keys the linkage resolver reads or appends to
const (
	KeyPlatform = "PLATFORM"
	KeyCPPPath  = "CPPPATH"
	KeyLibPath  = "LIBPATH"
	KeyLibs     = "LIBS"
)

type value struct {
	scalar string
	list   []string
	isList bool
}

// Environment is a build environment. The zero value is not usable, use New.
// An Environment is owned by a single caller and is not safe for concurrent use.
type Environment struct {
	keys   []string
	values map[string]*value
}

// New returns an empty Environment
func New() *Environment {
	return &Environment{values: map[string]*value{}}
}

// NewWithPlatform returns an Environment with only the PLATFORM key set
func NewWithPlatform(platform string) *Environment {
	env := New()
	env.Set(KeyPlatform, platform)
	return env
}

func (e *Environment) entry(key string) *value {
	v, ok := e.values[key]
	if !ok {
		v = &value{}
		e.values[key] = v
		e.keys = append(e.keys, key)
	}
	return v
}

// Has reports whether the key has been set
func (e *Environment) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// Get returns the scalar value for the given key. Sequence values are joined by spaces.
func (e *Environment) Get(key string) string {
	v, ok := e.values[key]
	if !ok {
		return ""
	}
	if v.isList {
		return strings.Join(v.list, " ")
	}
	return v.scalar
}

// Set replaces the value of the given key with a scalar
func (e *Environment) Set(key, val string) {
	v := e.entry(key)
	v.scalar, v.list, v.isList = val, nil, false
}

// SetList replaces the value of the given key with a copy of the given sequence
func (e *Environment) SetList(key string, vals []string) {
	v := e.entry(key)
	v.scalar, v.list, v.isList = "", append([]string{}, vals...), true
}

// List returns a copy of the sequence stored under key. A scalar is returned as a one element sequence.
func (e *Environment) List(key string) []string {
	v, ok := e.values[key]
	switch {
	case !ok:
		return []string{}
	case v.isList:
		return append([]string{}, v.list...)
	case v.scalar == "":
		return []string{}
	default:
		return []string{v.scalar}
	}
}

// Append adds values to the end of the sequence stored under key, creating it if needed. Existing entries are
// never reordered or removed, and duplicates are kept. A scalar value is promoted to a sequence first.
func (e *Environment) Append(key string, vals ...string) {
	v := e.entry(key)
	if !v.isList {
		if v.scalar != "" {
			v.list = []string{v.scalar}
		}
		v.scalar, v.isList = "", true
	}
	v.list = append(v.list, vals...)
	logging.Debug("Appended %v to %s", vals, key)
}

// Keys returns the keys in the order they were first set
func (e *Environment) Keys() []string {
	return append([]string{}, e.keys...)
}

// Platform returns the PLATFORM key
func (e *Environment) Platform() string {
	return e.Get(KeyPlatform)
}
