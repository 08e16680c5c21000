package clock

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-time/pkg/timecalc"
	"github.com/theapemachine/mcp-server-time/pkg/tools"
	"github.com/theapemachine/mcp-server-time/pkg/tools/utils"
)

// CurrentTimeArgs are the arguments of get_current_time.
type CurrentTimeArgs struct {
	Timezone string `json:"timezone" jsonschema_description:"IANA timezone name"`
}

// CurrentTimeTool reports the current time in a timezone.
type CurrentTimeTool struct {
	*tools.BaseTool
	calc *timecalc.Calculator
}

// NewCurrentTimeTool creates the get_current_time tool.
func NewCurrentTimeTool(calc *timecalc.Calculator, localTZ string) *CurrentTimeTool {
	schema := tools.GenerateSchema[CurrentTimeArgs](map[string]string{
		"timezone": zoneHint("", "'America/New_York', 'Europe/London'", localTZ),
	})

	handle := mcp.NewToolWithRawSchema(GetCurrentTime, "Get current time in a specific timezone", schema)
	handle.Annotations = readOnly("Current time")

	return &CurrentTimeTool{
		BaseTool: tools.NewBaseTool(GetCurrentTime, handle),
		calc:     calc,
	}
}

// Handler returns the current time as a JSON text block.
func (tool *CurrentTimeTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !utils.HasParams(request, "timezone") {
		return nil, fmt.Errorf("%w: timezone", tools.ErrMissingArgument)
	}

	tz, err := utils.GetRequiredStringParam(request, "timezone")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tools.ErrInvalidParams, err)
	}

	result, err := tool.calc.GetCurrentTime(tz)
	if err != nil {
		return nil, err
	}

	return tools.NewJSONResult(result)
}
