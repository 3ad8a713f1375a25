package encode

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DataDiff renders a character-level diff of two data payloads. Inserted
// runs appear as {+text+} and removed runs as {-text-}, colored per c. A
// nil c disables color.
func DataDiff(from, to string, c *Colors) string {
	if c == nil {
		c = PlainColors()
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffInsert:
			sb.WriteString(c.Insert("{+%s+}", d.Text))
		case diffpatch.DiffDelete:
			sb.WriteString(c.Delete("{-%s-}", d.Text))
		}
	}
	return sb.String()
}
