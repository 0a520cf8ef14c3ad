package config

import (
	"fmt"

	"github.com/mobius-tri/lextet/core"
	"github.com/mobius-tri/lextet/search"
)

// RunSpec is one enumerator invocation: a target vertex count plus its
// res/mod split and irreducible-only flag, matching the CLI contract of §6
// (and one entry of a YAML batch manifest's "runs" list).
type RunSpec struct {
	NV          int  `yaml:"nv"`
	Res         int  `yaml:"res"`
	Mod         int  `yaml:"mod"`
	Irreducible bool `yaml:"irreducible"`
}

// Validate checks RunSpec against §6/§7's argument-error taxonomy.
func (r RunSpec) Validate() error {
	if r.NV < 4 || r.NV > core.MaxVertices {
		return fmt.Errorf("config: nv=%d outside [4,%d]: %w", r.NV, core.MaxVertices, ErrArgument)
	}
	mod := r.Mod
	if mod == 0 {
		mod = 1
	}
	if mod < 1 {
		return fmt.Errorf("config: mod=%d must be >= 1: %w", mod, ErrArgument)
	}
	if r.Res < 0 || r.Res >= mod {
		return fmt.Errorf("config: res=%d out of [0,%d): %w", r.Res, mod, ErrArgument)
	}
	return nil
}

// Options builds the search.Option list this RunSpec implies.
func (r RunSpec) Options() []search.Option {
	mod := r.Mod
	if mod == 0 {
		mod = 1
	}
	opts := []search.Option{search.WithSplit(r.Res, mod)}
	if r.Irreducible {
		opts = append(opts, search.WithIrreducibleOnly())
	}
	return opts
}
