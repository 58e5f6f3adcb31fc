package experiment

import "fmt"

// DuplicateNameError is returned when an experiment name is registered twice.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("experiment '%s' is already registered", e.Name)
}

// NotFoundError is returned when no experiment has the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("experiment '%s' not found", e.Name)
}

// MissingConfigurationError reports a required field a definition did not
// provide. Position is the index of the definition within its experiment, or
// -1 when the error concerns the experiment as a whole.
type MissingConfigurationError struct {
	Experiment string
	Position   int
	Field      string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing %s", location(e.Experiment, e.Position), e.Field)
}

// InvalidValueError reports a field whose value is out of range.
type InvalidValueError struct {
	Experiment string
	Position   int
	Field      string
	Reason     string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", location(e.Experiment, e.Position), e.Field, e.Reason)
}

func location(name string, pos int) string {
	switch {
	case name == "":
		return fmt.Sprintf("definition %d", pos)
	case pos < 0:
		return fmt.Sprintf("experiment '%s'", name)
	default:
		return fmt.Sprintf("experiment '%s', definition %d", name, pos)
	}
}
