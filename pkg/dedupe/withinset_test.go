package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/rosterdiff/pkg/errors"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

func testColumns() roster.Columns {
	return roster.Columns{Team: "Team Name", To: "TO", Cc: "CC"}
}

func TestWithinSet(t *testing.T) {
	table := roster.Table{
		{"Team Name", "TO", "CC"},
		{"A", "a1@example.com", "a1cc@example.com"},
		{"B", "b1@example.com", ""},
		{"A", "a2@example.com", ""},
		{"C", "c@example.com", ""},
		{"B", "b2@example.com", ""},
		{"A", "a3@example.com", ""},
	}

	groups, err := WithinSet(table, testColumns())
	require.NoError(t, err)
	require.Len(t, groups, 2, "each duplicated name appears exactly once")

	// First-appearance order, occurrence counts, first-seen to/cc preserved.
	assert.Equal(t, "A", groups[0].Team)
	assert.Equal(t, 3, groups[0].Count)
	assert.Equal(t, "a1@example.com", groups[0].To)
	assert.Equal(t, "a1cc@example.com", groups[0].Cc)

	assert.Equal(t, "B", groups[1].Team)
	assert.Equal(t, 2, groups[1].Count)
	assert.Equal(t, "b1@example.com", groups[1].To)
}

func TestWithinSetTrimsBeforeCounting(t *testing.T) {
	table := roster.Table{
		{"Team Name", "TO", "CC"},
		{"A", "raw@example.com", ""},
		{"  A  ", "padded@example.com", ""},
	}

	groups, err := WithinSet(table, testColumns())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count)
	// The first-seen row's original value is carried, not the padded one.
	assert.Equal(t, "raw@example.com", groups[0].To)
}

func TestWithinSetNoDuplicates(t *testing.T) {
	table := roster.Table{
		{"Team Name", "TO", "CC"},
		{"A", "", ""},
		{"B", "", ""},
	}

	groups, err := WithinSet(table, testColumns())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestWithinSetSkipsBlankNames(t *testing.T) {
	table := roster.Table{
		{"Team Name", "TO", "CC"},
		{"", "", ""},
		{"  ", "", ""},
		{"A", "", ""},
	}

	groups, err := WithinSet(table, testColumns())
	require.NoError(t, err)
	assert.Empty(t, groups, "blank cells never form a duplicate group")
}

func TestWithinSetMissingTeamColumn(t *testing.T) {
	table := roster.Table{
		{"TO", "CC"},
		{"a@example.com", ""},
	}

	_, err := WithinSet(table, testColumns())
	require.Error(t, err)
	assert.True(t, errors.IsMissingColumn(err))
}

func TestWithinSetToleratesMissingRecipientColumns(t *testing.T) {
	table := roster.Table{
		{"Team Name"},
		{"A"},
		{"A"},
	}

	groups, err := WithinSet(table, testColumns())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].To)
	assert.Equal(t, "", groups[0].Cc)
}
