package agent

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var canonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func fixedNormalizer(base time.Time) *DateNormalizer {
	d := NewDateNormalizer()
	d.now = func() time.Time { return base }
	return d
}

func TestNormalizeRelativeDates(t *testing.T) {
	// A Tuesday.
	base := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	d := fixedNormalizer(base)

	assert.Equal(t, "2026-09-01", d.Normalize("today works for me"))
	assert.Equal(t, "2026-09-02", d.Normalize("tomorrow please"))
}

func TestNormalizeWeekdayResolvesToCanonicalForm(t *testing.T) {
	d := fixedNormalizer(time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))

	got := d.Normalize("next Friday")
	assert.Regexp(t, canonicalDate, got)
}

func TestNormalizeMisses(t *testing.T) {
	d := fixedNormalizer(time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "", d.Normalize(""))
	assert.Equal(t, "", d.Normalize("no date in here"))
	assert.Equal(t, "", d.Normalize("qwerty"))
}
