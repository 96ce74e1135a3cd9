package processors

import (
	"fmt"

	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// BuilderFunc creates an EventProcessor from generic config.
// Config is a map of processor-specific settings.
type BuilderFunc func(cfg map[string]any) (driven.EventProcessor, error)

// Registry maps processor names to their builders.
// It allows dynamic construction of processors from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new processor registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a processor builder to the registry.
// Name should be unique and match the processor's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a processor by name with the given config.
// Returns error if the processor name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.EventProcessor, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown processor: %s", name)
	}
	return builder(cfg)
}

// Has returns true if a processor with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered processor names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in processors.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("identity", func(_ map[string]any) (driven.EventProcessor, error) {
		return NewIdentity(), nil
	})
	r.Register("remove", func(cfg map[string]any) (driven.EventProcessor, error) {
		names, err := cfgStrings(cfg, "props")
		if err != nil {
			return nil, err
		}
		return NewRemoveProperties(names), nil
	})
	r.Register("keep", func(cfg map[string]any) (driven.EventProcessor, error) {
		names, err := cfgStrings(cfg, "props")
		if err != nil {
			return nil, err
		}
		return NewKeepProperties(names), nil
	})
	r.Register("replace", func(cfg map[string]any) (driven.EventProcessor, error) {
		prop, err := cfgString(cfg, "prop")
		if err != nil {
			return nil, err
		}
		value, err := cfgString(cfg, "value")
		if err != nil {
			return nil, err
		}
		return NewReplaceProperty(prop, value), nil
	})
	r.Register("tzrename", func(cfg map[string]any) (driven.EventProcessor, error) {
		from, err := cfgString(cfg, "from")
		if err != nil {
			return nil, err
		}
		to, err := cfgString(cfg, "to")
		if err != nil {
			return nil, err
		}
		return NewTimezoneRename(from, to), nil
	})
	r.Register("limit", func(cfg map[string]any) (driven.EventProcessor, error) {
		n, err := cfgInt(cfg, "count")
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("limit count must not be negative: %d", n)
		}
		return NewLimit(n), nil
	})

	return r
}

func cfgString(cfg map[string]any, key string) (string, error) {
	val, ok := cfg[key]
	if !ok {
		return "", fmt.Errorf("missing config key: %s", key)
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("config key %s: expected string, got %T", key, val)
	}
	return s, nil
}

func cfgStrings(cfg map[string]any, key string) ([]string, error) {
	val, ok := cfg[key]
	if !ok {
		return nil, fmt.Errorf("missing config key: %s", key)
	}
	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("config key %s: expected string element, got %T", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("config key %s: expected string list, got %T", key, val)
	}
}

func cfgInt(cfg map[string]any, key string) (int, error) {
	val, ok := cfg[key]
	if !ok {
		return 0, fmt.Errorf("missing config key: %s", key)
	}
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		// TOML integers are parsed as int64
		return int(v), nil
	default:
		return 0, fmt.Errorf("config key %s: expected integer, got %T", key, val)
	}
}
