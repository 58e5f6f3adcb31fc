// This file translates the HCL schema structs into the format-agnostic model
// defined in the config package.

package hcl

import (
	"fmt"

	"github.com/vk/pqbench/internal/config"
	"github.com/vk/pqbench/internal/experiment"
)

const (
	roleBackend = "backend"
	roleCache   = "cache"
)

func translateExperiment(b *experimentBlock, source string) (*config.Experiment, error) {
	decl := &config.Experiment{
		Name:        b.Name,
		Source:      source,
		Definitions: make([]experiment.Overrides, 0, len(b.Definitions)),
	}
	for i, d := range b.Definitions {
		o, err := translateDefinition(d)
		if err != nil {
			return nil, fmt.Errorf("experiment '%s', definition %d: %w", b.Name, i, err)
		}
		decl.Definitions = append(decl.Definitions, o)
	}
	return decl, nil
}

func translateDefinition(d *definitionBlock) (experiment.Overrides, error) {
	o := experiment.Overrides{
		Part:        d.Part,
		SkipInit:    d.SkipInit,
		ServerPath:  d.ServerPath,
		BackendPath: d.BackendPath,
		CachePath:   d.CachePath,
		Users:       d.Users,
		Duration:    d.Duration,
	}
	if d.DB != nil {
		o.DB = experiment.DB{
			Type:        d.DB.Type,
			WriteAround: d.DB.WriteAround,
			Compare:     d.DB.Compare,
			Flags:       d.DB.Flags,
			SQLScript:   d.DB.SQLScript,
		}
	}
	if d.PopulatePool != nil {
		o.PopulatePool = experiment.Pool{Max: d.PopulatePool.Max, Depth: d.PopulatePool.Depth}
	}
	if d.ClientPool != nil {
		o.ClientPool = experiment.Pool{Max: d.ClientPool.Max, Depth: d.ClientPool.Depth}
	}
	if d.ClientMix != nil {
		o.ClientMix = experiment.Mix{
			Subscribe: d.ClientMix.Subscribe,
			Login:     d.ClientMix.Login,
			Logout:    d.ClientMix.Logout,
		}
	}

	for _, ev := range d.Evictions {
		thresholds := &experiment.Eviction{Lo: ev.Lo, Hi: ev.Hi}
		switch ev.Role {
		case roleBackend:
			if o.BackendEviction != nil {
				return o, fmt.Errorf("duplicate eviction block for role '%s'", ev.Role)
			}
			o.BackendEviction = thresholds
		case roleCache:
			if o.CacheEviction != nil {
				return o, fmt.Errorf("duplicate eviction block for role '%s'", ev.Role)
			}
			o.CacheEviction = thresholds
		default:
			return o, fmt.Errorf("unknown eviction role '%s': must be '%s' or '%s'", ev.Role, roleBackend, roleCache)
		}
	}
	return o, nil
}
