// Package clock provides the get_current_time and convert_time tools.
package clock

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-time/pkg/timecalc"
	"github.com/theapemachine/mcp-server-time/pkg/tools"
)

const (
	GetCurrentTime = "get_current_time"
	ConvertTime    = "convert_time"
)

// Tools returns both time tools in their listing order. localTZ only appears
// in the argument descriptions, as the zone a caller should fall back to.
func Tools(calc *timecalc.Calculator, localTZ string) []tools.Tool {
	return []tools.Tool{
		NewCurrentTimeTool(calc, localTZ),
		NewConvertTimeTool(calc, localTZ),
	}
}

// zoneHint describes a timezone argument. qualifier is "", "source" or "target".
func zoneHint(qualifier, examples, localTZ string) string {
	prefix, which := "IANA", "timezone"
	if qualifier != "" {
		prefix = capitalize(qualifier) + " IANA"
		which = qualifier + " timezone"
	}

	return fmt.Sprintf(
		"%s timezone name (e.g., %s). Use '%s' as local timezone if no %s provided by the user.",
		prefix, examples, localTZ, which,
	)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func readOnly(title string) mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		Title:           title,
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
		IdempotentHint:  mcp.ToBoolPtr(false),
		OpenWorldHint:   mcp.ToBoolPtr(false),
	}
}
