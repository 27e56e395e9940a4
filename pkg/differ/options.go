package differ

import "github.com/opsdesk/rosterdiff/pkg/roster"

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithIgnoredFields sets fields to ignore during comparison
func WithIgnoredFields(fields ...roster.Field) Option {
	return func(d *differ) {
		for _, field := range fields {
			d.ignoreFields[field] = true
		}
	}
}

// WithWithdrawnAsDeleted controls whether a record whose to and cc lists are
// both now empty, with no secondary attribute changed, is reclassified from
// Updated to Deleted. Enabled by default.
func WithWithdrawnAsDeleted(enabled bool) Option {
	return func(d *differ) {
		d.withdrawnAsDeleted = enabled
	}
}
