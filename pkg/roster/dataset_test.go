package roster

import "testing"

func TestDatasetSetAndGet(t *testing.T) {
	d := NewDataset()
	d.Set("Alpha", Record{Team: "Alpha", To: "a@example.com"})
	d.Set("Beta", Record{Team: "Beta"})

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if !d.Has("Alpha") || d.Has("Gamma") {
		t.Error("Has() misreports membership")
	}

	r, ok := d.Get("Alpha")
	if !ok || r.To != "a@example.com" {
		t.Errorf("Get(Alpha) = %+v, %v", r, ok)
	}
}

func TestDatasetLastWinsKeepsPosition(t *testing.T) {
	d := NewDataset()
	d.Set("Alpha", Record{Team: "Alpha", To: "first@example.com"})
	d.Set("Beta", Record{Team: "Beta"})
	d.Set("Alpha", Record{Team: "Alpha", To: "second@example.com"})

	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "Alpha" || keys[1] != "Beta" {
		t.Errorf("Keys() = %v, want [Alpha Beta]", keys)
	}

	r, _ := d.Get("Alpha")
	if r.To != "second@example.com" {
		t.Errorf("replacement record not stored, To = %q", r.To)
	}
}

func TestDatasetKeysIsCopy(t *testing.T) {
	d := NewDataset()
	d.Add(Record{Team: "Alpha"})

	keys := d.Keys()
	keys[0] = "mutated"

	if d.Keys()[0] != "Alpha" {
		t.Error("mutating the returned slice must not affect the dataset")
	}
}

func TestRecordValue(t *testing.T) {
	r := Record{
		Team:     "Alpha",
		To:       "a@example.com",
		Cc:       "b@example.com",
		Optional: map[Field]string{FieldReviewPeriod: "Q1"},
	}

	tests := []struct {
		field Field
		want  string
	}{
		{FieldTeam, "Alpha"},
		{FieldTo, "a@example.com"},
		{FieldCc, "b@example.com"},
		{FieldReviewPeriod, "Q1"},
		{FieldHolidayPolicy, ""},
	}
	for _, tt := range tests {
		if got := r.Value(tt.field); got != tt.want {
			t.Errorf("Value(%s) = %q, want %q", tt.field, got, tt.want)
		}
	}
}
