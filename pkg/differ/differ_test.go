package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/rosterdiff/pkg/roster"
)

func dataset(records ...roster.Record) *roster.Dataset {
	d := roster.NewDataset()
	for _, r := range records {
		d.Add(r)
	}
	return d
}

func TestDatasetsNoChanges(t *testing.T) {
	rec := roster.Record{
		Team: "Alpha",
		To:   "a@example.com",
		Cc:   "b@example.com",
		Optional: map[roster.Field]string{
			roster.FieldReviewPeriod: "Q1",
		},
	}

	cs := New().Datasets(dataset(rec), dataset(rec))
	assert.True(t, cs.IsEmpty())
	assert.Empty(t, cs.Changes)
	assert.Equal(t, "No changes detected", cs.String())
}

func TestDatasetsCreated(t *testing.T) {
	current := dataset(roster.Record{Team: "Alpha", To: "a@example.com"})
	baseline := roster.NewDataset()

	cs := New().Datasets(current, baseline)
	require.Len(t, cs.Changes, 1)

	ch := cs.Changes[0]
	assert.Equal(t, ChangeKindCreated, ch.Kind)
	assert.Equal(t, "Alpha", ch.Key)
	assert.Equal(t, "a@example.com", ch.To)
	assert.Equal(t, "", ch.Remarks)
	assert.Equal(t, 1, cs.Summary.Created)
}

func TestDatasetsCreatedWithCleanedRemark(t *testing.T) {
	current := dataset(roster.Record{
		Team:    "Alpha",
		To:      "a@example.com",
		Cleaned: []roster.Field{roster.FieldTo, roster.FieldCc},
	})

	cs := New().Datasets(current, roster.NewDataset())
	require.Len(t, cs.Changes, 1)
	assert.Equal(t, "auto-cleaned: TO / CC", cs.Changes[0].Remarks)
}

func TestDatasetsUpdatedRecipients(t *testing.T) {
	current := dataset(roster.Record{Team: "Alpha", To: "new@example.com", Cc: "c@example.com"})
	baseline := dataset(roster.Record{Team: "Alpha", To: "old@example.com", Cc: "c@example.com"})

	cs := New().Datasets(current, baseline)
	require.Len(t, cs.Changes, 1)

	ch := cs.Changes[0]
	assert.Equal(t, ChangeKindUpdated, ch.Kind)
	assert.Equal(t, "new@example.com", ch.To)
	assert.Equal(t, "", ch.Remarks, "recipient changes carry no field remark")
}

func TestDatasetsUpdatedOptionalFields(t *testing.T) {
	current := dataset(roster.Record{
		Team: "Alpha", To: "a@example.com",
		Optional: map[roster.Field]string{
			roster.FieldReviewPeriod: "Q2",
			roster.FieldStartTime:    "10:00",
		},
	})
	baseline := dataset(roster.Record{
		Team: "Alpha", To: "a@example.com",
		Optional: map[roster.Field]string{
			roster.FieldReviewPeriod: "Q1",
			roster.FieldStartTime:    "09:00",
		},
	})

	cs := New().Datasets(current, baseline)
	require.Len(t, cs.Changes, 1)

	ch := cs.Changes[0]
	assert.Equal(t, ChangeKindUpdated, ch.Kind)
	assert.Equal(t, "field: Review Period / field: Start Time", ch.Remarks)
}

func TestDatasetsWithdrawnRecipientsReclassifiedAsDeleted(t *testing.T) {
	current := dataset(roster.Record{Team: "Alpha", To: "", Cc: ""})
	baseline := dataset(roster.Record{Team: "Alpha", To: "a@example.com", Cc: "b@example.com"})

	cs := New().Datasets(current, baseline)
	require.Len(t, cs.Changes, 1)
	assert.Equal(t, ChangeKindDeleted, cs.Changes[0].Kind)
}

func TestDatasetsWithdrawnButOptionalChangedStaysUpdated(t *testing.T) {
	current := dataset(roster.Record{
		Team: "Alpha", To: "", Cc: "",
		Optional: map[roster.Field]string{roster.FieldReviewPeriod: "Q2"},
	})
	baseline := dataset(roster.Record{
		Team: "Alpha", To: "a@example.com", Cc: "",
		Optional: map[roster.Field]string{roster.FieldReviewPeriod: "Q1"},
	})

	cs := New().Datasets(current, baseline)
	require.Len(t, cs.Changes, 1)
	assert.Equal(t, ChangeKindUpdated, cs.Changes[0].Kind)
}

func TestDatasetsWithdrawnReclassificationDisabled(t *testing.T) {
	current := dataset(roster.Record{Team: "Alpha", To: "", Cc: ""})
	baseline := dataset(roster.Record{Team: "Alpha", To: "a@example.com", Cc: ""})

	cs := New(WithWithdrawnAsDeleted(false)).Datasets(current, baseline)
	require.Len(t, cs.Changes, 1)
	assert.Equal(t, ChangeKindUpdated, cs.Changes[0].Kind)
}

func TestDatasetsDeletedFromBaseline(t *testing.T) {
	current := roster.NewDataset()
	baseline := dataset(roster.Record{Team: "Alpha", To: "a@example.com", Cc: "b@example.com"})

	cs := New().Datasets(current, baseline)
	require.Len(t, cs.Changes, 1)

	ch := cs.Changes[0]
	assert.Equal(t, ChangeKindDeleted, ch.Kind)
	assert.Equal(t, "Alpha", ch.Key)
	assert.Equal(t, "", ch.To, "vanished keys report blank recipients")
	assert.Equal(t, "", ch.Cc)
	assert.Equal(t, "", ch.Remarks)
}

func TestDatasetsPartitionsKeySpace(t *testing.T) {
	current := dataset(
		roster.Record{Team: "Same", To: "s@example.com"},
		roster.Record{Team: "Changed", To: "new@example.com"},
		roster.Record{Team: "New", To: "n@example.com"},
	)
	baseline := dataset(
		roster.Record{Team: "Same", To: "s@example.com"},
		roster.Record{Team: "Changed", To: "old@example.com"},
		roster.Record{Team: "Gone", To: "g@example.com"},
	)

	cs := New().Datasets(current, baseline)
	require.Len(t, cs.Changes, 3)

	seen := map[string]int{}
	for _, ch := range cs.Changes {
		seen[ch.Key]++
	}
	for key, n := range seen {
		assert.Equal(t, 1, n, "key %s reported more than once", key)
	}
	assert.NotContains(t, seen, "Same")

	assert.Equal(t, Summary{Created: 1, Updated: 1, Deleted: 1, Total: 3}, cs.Summary)
	assert.Equal(t, "Changeset: 1 created, 1 updated, 1 deleted (Total: 3 changes)", cs.String())
}

func TestDatasetsIgnoredFields(t *testing.T) {
	current := dataset(roster.Record{
		Team: "Alpha", To: "a@example.com",
		Optional: map[roster.Field]string{roster.FieldHolidayPolicy: "on-call"},
	})
	baseline := dataset(roster.Record{
		Team: "Alpha", To: "a@example.com",
		Optional: map[roster.Field]string{roster.FieldHolidayPolicy: "skip"},
	})

	cs := New(WithIgnoredFields(roster.FieldHolidayPolicy)).Datasets(current, baseline)
	assert.True(t, cs.IsEmpty())
}

func TestDatasetsRoundTrip(t *testing.T) {
	// Diffing a dataset against itself after a no-edit round trip yields
	// zero change records.
	records := []roster.Record{
		{Team: "Alpha", To: "a@example.com", Cc: "b@example.com"},
		{Team: "Beta", To: "c@example.com"},
	}

	cs := New().Datasets(dataset(records...), dataset(records...))
	assert.True(t, cs.IsEmpty())
}
