package hcl

// fileRoot is the top-level structure of an experiment file.
type fileRoot struct {
	Experiments []*experimentBlock `hcl:"experiment,block"`
}

// experimentBlock is an `experiment "<name>"` block.
type experimentBlock struct {
	Name        string             `hcl:"name,label"`
	Definitions []*definitionBlock `hcl:"definition,block"`
}

// definitionBlock holds one run variant. `part` is optional here so that a
// missing value surfaces as a MissingConfigurationError during synthesis.
type definitionBlock struct {
	Part        string `hcl:"part,optional"`
	SkipInit    bool   `hcl:"skip_init,optional"`
	ServerPath  string `hcl:"server_path,optional"`
	BackendPath string `hcl:"backend_path,optional"`
	CachePath   string `hcl:"cache_path,optional"`
	Users       int    `hcl:"users,optional"`
	Duration    int    `hcl:"duration,optional"`

	DB           *dbBlock         `hcl:"db,block"`
	PopulatePool *poolBlock       `hcl:"populate_pool,block"`
	ClientPool   *poolBlock       `hcl:"client_pool,block"`
	ClientMix    *mixBlock        `hcl:"client_mix,block"`
	Evictions    []*evictionBlock `hcl:"eviction,block"`
}

type dbBlock struct {
	Type        string `hcl:"type,optional"`
	WriteAround bool   `hcl:"writearound,optional"`
	Compare     bool   `hcl:"compare,optional"`
	Flags       string `hcl:"flags,optional"`
	SQLScript   string `hcl:"sql_script,optional"`
}

type poolBlock struct {
	Max   int `hcl:"max,optional"`
	Depth int `hcl:"depth,optional"`
}

type mixBlock struct {
	Subscribe *int `hcl:"subscribe,optional"`
	Login     *int `hcl:"login,optional"`
	Logout    *int `hcl:"logout,optional"`
}

// evictionBlock is an `eviction "<role>"` block; role is backend or cache.
type evictionBlock struct {
	Role string `hcl:"role,label"`
	Lo   int    `hcl:"lo"`
	Hi   int    `hcl:"hi"`
}
