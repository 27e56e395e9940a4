package roster

// Dataset is a keyed collection of records: a mapping from normalized team
// name to Record, preserving first-insertion order for deterministic
// iteration. Uniqueness is not enforced on construction; setting an existing
// key replaces its record in place (last wins), which is how duplicate rows
// in a source table collapse during extraction.
type Dataset struct {
	keys    []string
	records map[string]Record
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		records: make(map[string]Record),
	}
}

// Set stores a record under key. A new key is appended to the iteration
// order; an existing key keeps its position and has its record replaced.
func (d *Dataset) Set(key string, r Record) {
	if _, ok := d.records[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.records[key] = r
}

// Add stores a record under its own (already normalized) team key.
func (d *Dataset) Add(r Record) {
	d.Set(r.Team, r)
}

// Get returns the record for key, and whether it exists.
func (d *Dataset) Get(key string) (Record, bool) {
	r, ok := d.records[key]
	return r, ok
}

// Has reports whether key exists in the dataset.
func (d *Dataset) Has(key string) bool {
	_, ok := d.records[key]
	return ok
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Keys returns the keys in first-insertion order. The returned slice is a
// copy; mutating it does not affect the dataset.
func (d *Dataset) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Records returns the records in first-insertion order.
func (d *Dataset) Records() []Record {
	records := make([]Record, 0, len(d.keys))
	for _, k := range d.keys {
		records = append(records, d.records[k])
	}
	return records
}
