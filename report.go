package caplog

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Dump renders the captured events for test output, one JSON object per
// line, in capture order.
func (c *Capture) Dump() string {
	sb := &strings.Builder{}
	for _, ev := range c.events.Events() {
		b, err := json.Marshal(ev)
		if err != nil {
			// unmarshalable field values still show up, just not as JSON
			fmt.Fprintf(sb, "%v\n", ev)
			continue
		}
		sb.Write(b)
		sb.WriteByte('\n')
	}

	return sb.String()
}
