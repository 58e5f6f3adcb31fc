package catalog

import (
	"github.com/vk/pqbench/internal/config"
	"github.com/vk/pqbench/internal/experiment"
)

const (
	textPart = "twitternew-text"

	postgresFastFlags = "-c synchronous_commit=off -c fsync=off"
	postgresBulkFlags = postgresFastFlags +
		" -c full_page_writes=off -c bgwriter_lru_maxpages=0" +
		" -c bgwriter_delay=10000 -c checkpoint_segments=600"

	twitterSchema = "scripts/exp/twitter-pg-schema.sql"
)

// Builtin returns the declarations of the experiments shipped with the binary.
func Builtin() *config.Model {
	return &config.Model{
		Experiments: []*config.Experiment{
			{
				Name:        "basic",
				Definitions: []experiment.Overrides{{Part: textPart}},
			},
			{
				Name: "writearound",
				Definitions: []experiment.Overrides{{
					Part: textPart,
					DB: experiment.DB{
						Type:        "postgres",
						WriteAround: true,
						Flags:       postgresFastFlags,
					},
				}},
			},
			{
				Name: "postgres",
				Definitions: []experiment.Overrides{{
					Part: textPart,
					DB: experiment.DB{
						Type:      "postgres",
						Compare:   true,
						Flags:     postgresBulkFlags,
						SQLScript: twitterSchema,
					},
					SkipInit:     true,
					PopulatePool: experiment.Pool{Max: 5, Depth: 100},
					ClientPool:   experiment.Pool{Depth: 100},
					ClientMix: experiment.Mix{
						Subscribe: experiment.Int(0),
						Login:     experiment.Int(0),
						Logout:    experiment.Int(0),
					},
				}},
			},
			{
				Name: "eviction",
				Definitions: []experiment.Overrides{{
					Part: textPart,
					DB: experiment.DB{
						Type:        "postgres",
						WriteAround: true,
					},
					BackendEviction: &experiment.Eviction{Lo: 20, Hi: 25},
					CacheEviction:   &experiment.Eviction{Lo: 15, Hi: 20},
				}},
			},
		},
	}
}
