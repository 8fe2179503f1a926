package buildenv

import (
	"errors"
	"sort"

	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/logging"
)

// Extension is a build tool module that contributes configuration to an Environment.
// Apply corresponds to the build tool's "generate" entry point and IsAvailable to its "exists" probe.
type Extension interface {
	Name() string
	IsAvailable(env *Environment) bool
	Apply(env *Environment)
}

// ErrUnknownExtension is returned when an extension is requested that was never registered
var ErrUnknownExtension = errors.New("unknown extension")

// Registry is the set of extensions a build tool can discover by name
type Registry struct {
	extensions map[string]Extension
}

func NewRegistry() *Registry {
	return &Registry{extensions: map[string]Extension{}}
}

// Register adds an extension. Registering two extensions under the same name is a programming error.
func (r *Registry) Register(ext Extension) error {
	if _, exists := r.extensions[ext.Name()]; exists {
		return errs.New("Extension already registered: %s", ext.Name())
	}
	r.extensions[ext.Name()] = ext
	return nil
}

// Lookup returns the extension registered under name
func (r *Registry) Lookup(name string) (Extension, error) {
	ext, ok := r.extensions[name]
	if !ok {
		return nil, errs.Wrap(ErrUnknownExtension, "Unknown extension: %s", name)
	}
	return ext, nil
}

// Names returns the registered extension names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.extensions))
	for name := range r.extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate applies the named extensions to env in the given order, skipping those that report themselves as
// unavailable. All names are resolved before anything is applied, so an unknown name leaves env untouched.
// Returns the names of the extensions that were applied.
func (r *Registry) Generate(env *Environment, names ...string) ([]string, error) {
	exts := make([]Extension, 0, len(names))
	for _, name := range names {
		ext, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}

	applied := []string{}
	for _, ext := range exts {
		if !ext.IsAvailable(env) {
			logging.Debug("Skipping unavailable extension: %s", ext.Name())
			continue
		}
		ext.Apply(env)
		applied = append(applied, ext.Name())
	}
	return applied, nil
}
