// Package shader defines the per-pixel shader contract and a registry that
// binds shader names to implementations.
package shader

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"shaderbox/vec"
)

// Shader computes the color of one pixel.
//
// fragCoord is the pixel position, resolution the display size in pixels and
// time the simulated time in seconds. The result is an RGB 3-vector with a
// nominal range of [0, 1] per channel; values outside it are clamped by the
// renderer. Shaders must be pure: they are called once per pixel per frame.
type Shader func(fragCoord, resolution vec.Vec, time float64) vec.Vec

var ErrShaderNotFound = errors.New("shader: not found")

type entry struct {
	name   string
	shader Shader
}

// Registry maps shader names (and aliases) to shaders. The zero value is an
// empty registry ready to use.
type Registry struct {
	primary map[string]entry
	lookup  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		primary: make(map[string]entry),
		lookup:  make(map[string]string),
	}
}

// Register binds name and any aliases to s.
func (r *Registry) Register(name string, s Shader, aliases ...string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("shader registry: empty name")
	}
	if s == nil {
		return errors.Errorf("shader registry: %q has no implementation", name)
	}
	if r.primary == nil {
		r.primary = make(map[string]entry)
		r.lookup = make(map[string]string)
	}
	if _, ok := r.lookup[name]; ok {
		return errors.Errorf("shader registry: duplicate name %q", name)
	}
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		if _, ok := r.lookup[alias]; ok || alias == name {
			return errors.Errorf("shader registry: duplicate alias %q", alias)
		}
	}

	r.primary[name] = entry{name: name, shader: s}
	r.lookup[name] = name
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		r.lookup[alias] = name
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, s Shader, aliases ...string) {
	if err := r.Register(name, s, aliases...); err != nil {
		panic(err)
	}
}

// Resolve returns the shader registered under name or one of its aliases.
func (r *Registry) Resolve(name string) (Shader, error) {
	key := strings.TrimSpace(name)
	if primary, ok := r.lookup[key]; ok {
		if e, ok := r.primary[primary]; ok {
			return e.shader, nil
		}
	}
	return nil, errors.Wrapf(ErrShaderNotFound, "%q", name)
}

// Canonical returns the primary name for name or alias.
func (r *Registry) Canonical(name string) (string, bool) {
	primary, ok := r.lookup[strings.TrimSpace(name)]
	return primary, ok
}

// Names returns the primary names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.primary))
	for name := range r.primary {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int { return len(r.primary) }
