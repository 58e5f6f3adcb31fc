// Package cmdline builds command lines from an ordered list of flags.
//
// A Builder never reorders what it is given, so identical input always
// serializes to byte-identical output. Tokens that a shell would interpret are
// quoted; Split reverses the serialization for process launchers.
package cmdline

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Flag is one long option. A flag without a value is rendered as --name,
// otherwise as --name=value.
type Flag struct {
	Name     string
	Value    string
	HasValue bool
}

// String renders the flag without quoting.
func (f Flag) String() string {
	if !f.HasValue {
		return "--" + f.Name
	}
	return "--" + f.Name + "=" + f.Value
}

// Builder accumulates flags for a single executable.
type Builder struct {
	path  string
	flags []Flag
}

// New starts a command line for the executable at path.
func New(path string) *Builder {
	return &Builder{path: path}
}

// Flag appends a bare --name.
func (b *Builder) Flag(name string) *Builder {
	b.flags = append(b.flags, Flag{Name: strings.TrimPrefix(name, "--")})
	return b
}

// FlagIf appends a bare --name when cond holds.
func (b *Builder) FlagIf(cond bool, name string) *Builder {
	if cond {
		b.Flag(name)
	}
	return b
}

// Value appends --name=v.
func (b *Builder) Value(name, v string) *Builder {
	b.flags = append(b.flags, Flag{Name: strings.TrimPrefix(name, "--"), Value: v, HasValue: true})
	return b
}

// Int appends --name=v.
func (b *Builder) Int(name string, v int) *Builder {
	return b.Value(name, strconv.Itoa(v))
}

// IntIfSet appends --name=v unless v is zero.
func (b *Builder) IntIfSet(name string, v int) *Builder {
	if v != 0 {
		b.Int(name, v)
	}
	return b
}

// IntPtr appends --name=*v unless v is nil.
func (b *Builder) IntPtr(name string, v *int) *Builder {
	if v != nil {
		b.Int(name, *v)
	}
	return b
}

// Flags returns a copy of the flags appended so far.
func (b *Builder) Flags() []Flag {
	return append([]Flag(nil), b.flags...)
}

// Args returns the unquoted argv, executable first.
func (b *Builder) Args() []string {
	args := make([]string, 0, len(b.flags)+1)
	args = append(args, b.path)
	for _, f := range b.flags {
		args = append(args, f.String())
	}
	return args
}

// String serializes the command line, quoting tokens where a shell needs it.
func (b *Builder) String() string {
	return shellquote.Join(b.Args()...)
}

// Split parses a serialized command line back into argv.
func Split(cmd string) ([]string, error) {
	return shellquote.Split(cmd)
}
