package synth

const (
	DefaultServerPath  = "./obj/pqserver"
	DefaultUsers       = 1000
	DefaultDuration    = 100000
	DefaultPopDuration = 0

	// Pool sizing applied to write-around runs that leave it unset.
	DefaultPoolMax   = 5
	DefaultPoolDepth = 10
)

// Template holds the baseline values every definition starts from.
type Template struct {
	ServerPath  string
	Users       int
	Duration    int
	PopDuration int
	Verbose     bool
}

// DefaultTemplate returns the baseline used by the built-in catalog.
func DefaultTemplate() Template {
	return Template{
		ServerPath:  DefaultServerPath,
		Users:       DefaultUsers,
		Duration:    DefaultDuration,
		PopDuration: DefaultPopDuration,
		Verbose:     true,
	}
}
