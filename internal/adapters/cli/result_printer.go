// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/portfolio/internal/core/result"
)

func mark(attr color.Attribute, symbol string) string {
	return color.New(attr).Sprint(symbol)
}

// PrintResult writes an operation outcome and returns it as an error when it
// did not succeed, so commands exit non-zero on business failures.
func PrintResult(out io.Writer, res *result.Result) error {
	if res == nil {
		return nil
	}

	switch res.Status {
	case result.StatusSuccess:
		fmt.Fprintf(out, "%s %s\n", mark(color.FgGreen, "✓"), res.Message)
		return nil
	case result.StatusConflict, result.StatusNotFound:
		fmt.Fprintf(out, "%s %s\n", mark(color.FgYellow, "✗"), res.Message)
	default:
		fmt.Fprintf(out, "%s %s\n", mark(color.FgRed, "✗"), res.Message)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(out, "  - %s\n", e)
	}
	return res.Err()
}
