package export

import "github.com/vk/pqbench/internal/experiment"

// experimentRecord is the serialized shape of an experiment. Field names follow
// the keys runner scripts already consume.
type experimentRecord struct {
	Name        string             `cty:"name" yaml:"name"`
	Definitions []definitionRecord `cty:"defs" yaml:"defs"`
}

type definitionRecord struct {
	Part        string  `cty:"def_part" yaml:"def_part"`
	DBType      *string `cty:"def_db_type" yaml:"def_db_type,omitempty"`
	WriteAround bool    `cty:"def_db_writearound" yaml:"def_db_writearound,omitempty"`
	Compare     bool    `cty:"def_db_compare" yaml:"def_db_compare,omitempty"`
	DBFlags     *string `cty:"def_db_flags" yaml:"def_db_flags,omitempty"`
	SQLScript   *string `cty:"def_db_sql_script" yaml:"def_db_sql_script,omitempty"`

	BackendCmd  string  `cty:"backendcmd" yaml:"backendcmd"`
	CacheCmd    string  `cty:"cachecmd" yaml:"cachecmd"`
	InitCmd     *string `cty:"initcmd" yaml:"initcmd,omitempty"`
	PopulateCmd string  `cty:"populatecmd" yaml:"populatecmd"`
	ClientCmd   string  `cty:"clientcmd" yaml:"clientcmd"`
}

func newRecord(e *experiment.Experiment) experimentRecord {
	rec := experimentRecord{Name: e.Name()}
	for _, d := range e.Definitions() {
		rec.Definitions = append(rec.Definitions, definitionRecord{
			Part:        d.Part,
			DBType:      optional(d.DB.Type),
			WriteAround: d.DB.WriteAround,
			Compare:     d.DB.Compare,
			DBFlags:     optional(d.DB.Flags),
			SQLScript:   optional(d.DB.SQLScript),
			BackendCmd:  d.Commands.Backend,
			CacheCmd:    d.Commands.Cache,
			InitCmd:     optional(d.Commands.Init),
			PopulateCmd: d.Commands.Populate,
			ClientCmd:   d.Commands.Client,
		})
	}
	return rec
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
