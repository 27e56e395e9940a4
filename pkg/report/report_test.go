package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/rosterdiff/pkg/dedupe"
	"github.com/opsdesk/rosterdiff/pkg/differ"
	"github.com/opsdesk/rosterdiff/pkg/roster"
	"github.com/opsdesk/rosterdiff/pkg/validate"
)

func TestFromChangeset(t *testing.T) {
	cs := &differ.Changeset{
		Changes: []differ.Change{
			{Key: "Alpha", To: "a@example.com", Cc: "b@example.com", Kind: differ.ChangeKindCreated, Remarks: "auto-cleaned: TO"},
			{Key: "Beta", Kind: differ.ChangeKindDeleted},
		},
	}

	rows := FromChangeset(cs)
	assert.Equal(t, []Row{
		{"Alpha", "a@example.com", "b@example.com", "Created", "auto-cleaned: TO"},
		{"Beta", "", "", "Deleted", ""},
	}, rows)
}

func TestFromMismatches(t *testing.T) {
	findings := []validate.Finding{
		{Key: "Alpha", To: "bad", Cc: "c@example.com", Fields: []roster.Field{roster.FieldTo}},
		{Key: "Beta", To: "x", Cc: "y", Fields: []roster.Field{roster.FieldTo, roster.FieldCc}},
	}

	rows := FromMismatches(findings)
	assert.Equal(t, []Row{
		{"Alpha", "bad", "c@example.com", "Mismatch", "TO"},
		{"Beta", "x", "y", "Mismatch", "TO / CC"},
	}, rows)
}

func TestFromDuplicates(t *testing.T) {
	groups := []dedupe.DuplicateGroup{
		{Team: "Alpha", To: "a@example.com", Cc: "", Count: 3},
	}

	rows := FromDuplicates(groups)
	assert.Equal(t, []Row{
		{"Alpha", "a@example.com", "", "Duplicate", "3回出現"},
	}, rows)
}

func TestFromMatches(t *testing.T) {
	groups := []dedupe.GroupedMatch{
		{
			Type:       dedupe.MatchPartial,
			Key:        "Team",
			Positions:  []int{50},
			Targets:    []string{"Team A", "Team B"},
			TargetRows: []string{"100", "101"},
			Keywords:   []string{"Team", "Team"},
		},
	}

	rows := FromMatches(groups)
	assert.Equal(t, []Row{
		{"Partial", "Team", "50", "Team A / Team B", "100 / 101", "Team / Team"},
	}, rows)
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "10 / 60", JoinInts([]int{10, 60}))
	assert.Equal(t, "10", JoinInts([]int{10}))
	assert.Equal(t, "", JoinInts(nil))
}

func TestConcat(t *testing.T) {
	a := []Row{{"1"}}
	b := []Row{{"2"}, {"3"}}

	rows := Concat(a, nil, b)
	assert.Equal(t, []Row{{"1"}, {"2"}, {"3"}}, rows)
}
