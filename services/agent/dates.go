// File: services/agent/dates.go
package agent

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateNormalizer converts natural-language date phrases ("tomorrow",
// "next Monday") to a canonical YYYY-MM-DD string.
//
// Ambiguous phrases resolve relative to the current clock per the parser's
// own convention (a bare weekday means the nearest upcoming occurrence).
// No timezone handling beyond the clock's location.
type DateNormalizer struct {
	parser *when.Parser
	now    func() time.Time
}

func NewDateNormalizer() *DateNormalizer {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateNormalizer{parser: w, now: time.Now}
}

// Normalize returns the canonical date or "" when the text contains no
// recognizable date.
func (d *DateNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	r, err := d.parser.Parse(text, d.now())
	if err != nil || r == nil {
		return ""
	}
	return r.Time.Format("2006-01-02")
}
