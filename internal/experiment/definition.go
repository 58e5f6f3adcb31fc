package experiment

// DB selects and tunes the external storage backend of a definition. The zero
// value means the in-memory store.
type DB struct {
	Type        string // def_db_type, e.g. "postgres"
	WriteAround bool   // def_db_writearound
	Compare     bool   // def_db_compare
	Flags       string // def_db_flags, passed to the database verbatim
	SQLScript   string // def_db_sql_script
}

// Enabled reports whether an external database is configured.
func (d DB) Enabled() bool {
	return d.Type != ""
}

// Shim reports whether the server talks to the database as its primary store.
// Write-around runs keep the server's own store and never use the shim.
func (d DB) Shim() bool {
	return d.Enabled() && !d.WriteAround
}

// Pool sizes the server's database connection pool. Zero fields are unset.
type Pool struct {
	Max   int
	Depth int
}

// IsZero reports whether neither field is set.
func (p Pool) IsZero() bool {
	return p.Max == 0 && p.Depth == 0
}

// Mix overrides the client's operation probabilities, in percent. A nil field
// keeps the server's built-in default.
type Mix struct {
	Subscribe *int
	Login     *int
	Logout    *int
}

// Eviction holds the low and high memory thresholds, as a percentage of total
// memory, between which a process evicts cached entries.
type Eviction struct {
	Lo int
	Hi int
}

// Overrides enumerates every key a definition may declare. Fields left at their
// zero value fall back to the template the catalog is built with.
type Overrides struct {
	Part string // def_part
	DB   DB

	// SkipInit folds the initialization step into population: no init
	// command is produced and later roles do not pass --no-initialize.
	SkipInit bool

	ServerPath  string
	BackendPath string
	CachePath   string

	Users    int
	Duration int

	PopulatePool Pool
	ClientPool   Pool
	ClientMix    Mix

	BackendEviction *Eviction
	CacheEviction   *Eviction
}

// Commands are the synthesized command lines for each run role. Init is empty
// when the definition skips the init step.
type Commands struct {
	Init     string
	Populate string
	Backend  string
	Cache    string
	Client   string
}

// Definition is one fully-specified run configuration of an experiment.
type Definition struct {
	Overrides
	Commands Commands
}

// clone returns a copy of d that shares no memory with it.
func (d Definition) clone() Definition {
	d.ClientMix = Mix{
		Subscribe: copyInt(d.ClientMix.Subscribe),
		Login:     copyInt(d.ClientMix.Login),
		Logout:    copyInt(d.ClientMix.Logout),
	}
	d.BackendEviction = copyEviction(d.BackendEviction)
	d.CacheEviction = copyEviction(d.CacheEviction)
	return d
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}

func copyEviction(ev *Eviction) *Eviction {
	if ev == nil {
		return nil
	}
	c := *ev
	return &c
}

// Int returns a pointer to v, for populating optional Mix fields.
func Int(v int) *int {
	return &v
}
