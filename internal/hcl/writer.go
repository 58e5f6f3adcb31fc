package hcl

import (
	"io"
	"iter"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/pqbench/internal/experiment"
	"github.com/zclconf/go-cty/cty"
)

// Write renders experiments as HCL that Load reads back into the same
// overrides. Synthesized commands are not written; they are derived data.
func Write(w io.Writer, exps iter.Seq[*experiment.Experiment]) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	first := true
	for e := range exps {
		if !first {
			root.AppendNewline()
		}
		first = false

		block := root.AppendNewBlock("experiment", []string{e.Name()}).Body()
		for _, d := range e.Definitions() {
			writeDefinition(block.AppendNewBlock("definition", nil).Body(), d.Overrides)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func writeDefinition(body *hclwrite.Body, o experiment.Overrides) {
	setString(body, "part", o.Part)
	if o.SkipInit {
		body.SetAttributeValue("skip_init", cty.True)
	}
	setString(body, "server_path", o.ServerPath)
	setString(body, "backend_path", o.BackendPath)
	setString(body, "cache_path", o.CachePath)
	setInt(body, "users", o.Users)
	setInt(body, "duration", o.Duration)

	if o.DB != (experiment.DB{}) {
		db := body.AppendNewBlock("db", nil).Body()
		setString(db, "type", o.DB.Type)
		if o.DB.WriteAround {
			db.SetAttributeValue("writearound", cty.True)
		}
		if o.DB.Compare {
			db.SetAttributeValue("compare", cty.True)
		}
		setString(db, "flags", o.DB.Flags)
		setString(db, "sql_script", o.DB.SQLScript)
	}

	writePool(body, "populate_pool", o.PopulatePool)
	writePool(body, "client_pool", o.ClientPool)

	if m := o.ClientMix; m.Subscribe != nil || m.Login != nil || m.Logout != nil {
		mix := body.AppendNewBlock("client_mix", nil).Body()
		setIntPtr(mix, "subscribe", m.Subscribe)
		setIntPtr(mix, "login", m.Login)
		setIntPtr(mix, "logout", m.Logout)
	}

	writeEviction(body, roleBackend, o.BackendEviction)
	writeEviction(body, roleCache, o.CacheEviction)
}

func writePool(body *hclwrite.Body, name string, p experiment.Pool) {
	if p.IsZero() {
		return
	}
	pool := body.AppendNewBlock(name, nil).Body()
	setInt(pool, "max", p.Max)
	setInt(pool, "depth", p.Depth)
}

func writeEviction(body *hclwrite.Body, role string, ev *experiment.Eviction) {
	if ev == nil {
		return
	}
	b := body.AppendNewBlock("eviction", []string{role}).Body()
	b.SetAttributeValue("lo", cty.NumberIntVal(int64(ev.Lo)))
	b.SetAttributeValue("hi", cty.NumberIntVal(int64(ev.Hi)))
}

func setString(body *hclwrite.Body, name, v string) {
	if v != "" {
		body.SetAttributeValue(name, cty.StringVal(v))
	}
}

func setInt(body *hclwrite.Body, name string, v int) {
	if v != 0 {
		body.SetAttributeValue(name, cty.NumberIntVal(int64(v)))
	}
}

func setIntPtr(body *hclwrite.Body, name string, v *int) {
	if v != nil {
		body.SetAttributeValue(name, cty.NumberIntVal(int64(*v)))
	}
}
