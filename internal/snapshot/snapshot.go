// Package snapshot persists a baseline roster dataset as YAML so a later
// reconciliation run can diff against the state captured before any edits.
package snapshot

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/opsdesk/rosterdiff/pkg/errors"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

const filePermissions = 0o644

// document is the on-disk shape of a snapshot.
type document struct {
	Records []roster.Record `yaml:"records"`
}

// Save writes the dataset to path in insertion order.
func Save(path string, d *roster.Dataset) error {
	doc := document{Records: d.Records()}

	data, err := yaml.MarshalWithOptions(doc, yaml.Indent(2))
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}

	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Load reads a dataset back from path. Record order in the file becomes the
// dataset's iteration order.
func Load(path string) (*roster.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	d := roster.NewDataset()
	for _, rec := range doc.Records {
		d.Add(rec)
	}
	return d, nil
}
