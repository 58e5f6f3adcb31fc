package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/vk/pqbench/internal/experiment"
	"github.com/vk/pqbench/internal/hcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	HCL  Format = "hcl"
)

// Formats lists every supported format.
var Formats = []Format{Text, JSON, YAML, HCL}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format '%s': must be one of text, json, yaml, hcl", s)
}

// Write renders exps in format f.
func Write(w io.Writer, f Format, exps iter.Seq[*experiment.Experiment]) error {
	switch f {
	case Text:
		return writeText(w, exps)
	case JSON:
		return writeJSON(w, exps)
	case YAML:
		return writeYAML(w, exps)
	case HCL:
		return hcl.Write(w, exps)
	default:
		return fmt.Errorf("unknown format '%s'", f)
	}
}

// WriteNames prints one experiment name per line.
func WriteNames(w io.Writer, names iter.Seq[string]) error {
	for name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func records(exps iter.Seq[*experiment.Experiment]) []experimentRecord {
	recs := []experimentRecord{}
	for e := range exps {
		recs = append(recs, newRecord(e))
	}
	return recs
}

func writeText(w io.Writer, exps iter.Seq[*experiment.Experiment]) error {
	var buf bytes.Buffer
	for _, rec := range records(exps) {
		fmt.Fprintf(&buf, "experiment %s\n", rec.Name)
		for i, d := range rec.Definitions {
			fmt.Fprintf(&buf, "  definition %d\n", i)
			line(&buf, "def_part", d.Part)
			if d.DBType != nil {
				line(&buf, "def_db_type", *d.DBType)
				line(&buf, "def_db_writearound", fmt.Sprint(d.WriteAround))
				line(&buf, "def_db_compare", fmt.Sprint(d.Compare))
			}
			if d.DBFlags != nil {
				line(&buf, "def_db_flags", *d.DBFlags)
			}
			if d.SQLScript != nil {
				line(&buf, "def_db_sql_script", *d.SQLScript)
			}
			if d.InitCmd != nil {
				line(&buf, "initcmd", *d.InitCmd)
			}
			line(&buf, "populatecmd", d.PopulateCmd)
			line(&buf, "backendcmd", d.BackendCmd)
			line(&buf, "cachecmd", d.CacheCmd)
			line(&buf, "clientcmd", d.ClientCmd)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func line(buf *bytes.Buffer, key, value string) {
	fmt.Fprintf(buf, "    %-19s %s\n", key, value)
}

// writeJSON goes through cty so that absent optional fields render as null.
func writeJSON(w io.Writer, exps iter.Seq[*experiment.Experiment]) error {
	recs := records(exps)

	elemType, err := gocty.ImpliedType(experimentRecord{})
	if err != nil {
		return fmt.Errorf("failed to derive JSON schema: %w", err)
	}
	listType := cty.List(elemType)

	val, err := gocty.ToCtyValue(recs, listType)
	if err != nil {
		return fmt.Errorf("failed to convert experiments: %w", err)
	}
	raw, err := ctyjson.Marshal(val, listType)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to indent JSON: %w", err)
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}

func writeYAML(w io.Writer, exps iter.Seq[*experiment.Experiment]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(exps)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
