package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_PreservesOrder(t *testing.T) {
	t.Parallel()

	b := New("./obj/pqserver").
		Flag("twitternew").
		Flag("--verbose").
		FlagIf(false, "dbshim").
		FlagIf(true, "no-binary").
		Int("nusers", 1000).
		IntIfSet("dbpool-max", 0).
		IntIfSet("dbpool-depth", 10)

	assert.Equal(t, "./obj/pqserver --twitternew --verbose --no-binary --nusers=1000 --dbpool-depth=10", b.String())
	assert.Equal(t, []string{"./obj/pqserver", "--twitternew", "--verbose", "--no-binary", "--nusers=1000", "--dbpool-depth=10"}, b.Args())
}

func TestBuilder_IntPtr(t *testing.T) {
	t.Parallel()

	zero := 0
	b := New("srv").IntPtr("psubscribe", &zero).IntPtr("plogin", nil)

	assert.Equal(t, "srv --psubscribe=0", b.String())
}

func TestBuilder_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() string {
		return New("srv").Flag("a").Value("b", "c").Int("d", 4).String()
	}

	assert.Equal(t, build(), build())
}

func TestBuilder_FlagsReturnsCopy(t *testing.T) {
	t.Parallel()

	b := New("srv").Flag("a")
	flags := b.Flags()
	flags[0].Name = "changed"

	assert.Equal(t, "srv --a", b.String())
}

func TestSplit_RoundTripsQuotedValues(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	b := New("/opt/pq server").Value("label", "two words").Value("expr", "a;b")

	// --- Act ---
	args, err := Split(b.String())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, b.Args(), args)
	assert.Len(t, args, 3, "quoted tokens must not be split on whitespace")
}
