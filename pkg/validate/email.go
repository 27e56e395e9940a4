// Package validate checks roster recipient lists against email syntax.
// Validation failures are normal, reportable outcomes surfaced as findings,
// never errors.
package validate

import (
	"regexp"
	"strings"

	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// emailRe matches a standard local-part@domain address, case-insensitively.
var emailRe = regexp.MustCompile(`(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// SplitList splits a newline-delimited address list into trimmed,
// non-blank candidates. Both LF and CRLF sources are handled.
func SplitList(s string) []string {
	var candidates []string
	for _, line := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	}) {
		line = strings.TrimSpace(line)
		if line != "" {
			candidates = append(candidates, line)
		}
	}
	return candidates
}

// Emails reports whether a newline-delimited address list is valid.
// Empty or whitespace-only input is valid; otherwise every non-blank
// candidate must match the email grammar.
func Emails(s string) bool {
	for _, candidate := range SplitList(s) {
		if !emailRe.MatchString(candidate) {
			return false
		}
	}
	return true
}

// Finding reports a record whose recipient lists failed validation.
// Fields names which of {TO, CC} failed.
type Finding struct {
	Key    string
	To     string
	Cc     string
	Fields []roster.Field
}

// Scan walks a dataset in key order and returns one finding per record whose
// to or cc list fails validation.
func Scan(d *roster.Dataset) []Finding {
	var findings []Finding
	for _, key := range d.Keys() {
		rec, _ := d.Get(key)

		var failed []roster.Field
		if !Emails(rec.To) {
			failed = append(failed, roster.FieldTo)
		}
		if !Emails(rec.Cc) {
			failed = append(failed, roster.FieldCc)
		}

		if len(failed) > 0 {
			findings = append(findings, Finding{
				Key:    key,
				To:     rec.To,
				Cc:     rec.Cc,
				Fields: failed,
			})
		}
	}
	return findings
}
