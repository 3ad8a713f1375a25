package debug

import (
	"fmt"
	"os"

	"github.com/treex-io/treex/encode"
	"github.com/treex-io/treex/ir"
)

// Logf writes a trace line to stderr. ir.Node arguments are rendered in
// compact tree notation.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case ir.Node:
			args[i] = encode.String(x)
		case bool, string, int, uint64:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
