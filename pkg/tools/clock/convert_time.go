package clock

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-time/pkg/timecalc"
	"github.com/theapemachine/mcp-server-time/pkg/tools"
	"github.com/theapemachine/mcp-server-time/pkg/tools/utils"
)

// ConvertTimeArgs are the arguments of convert_time.
type ConvertTimeArgs struct {
	SourceTimezone string `json:"source_timezone" jsonschema_description:"Source IANA timezone name"`
	Time           string `json:"time" jsonschema_description:"Time to convert in 24-hour format (HH:MM)"`
	TargetTimezone string `json:"target_timezone" jsonschema_description:"Target IANA timezone name"`
}

// ConvertTimeTool converts a clock time between two timezones.
type ConvertTimeTool struct {
	*tools.BaseTool
	calc *timecalc.Calculator
}

// NewConvertTimeTool creates the convert_time tool.
func NewConvertTimeTool(calc *timecalc.Calculator, localTZ string) *ConvertTimeTool {
	schema := tools.GenerateSchema[ConvertTimeArgs](map[string]string{
		"source_timezone": zoneHint("source", "'America/New_York', 'Europe/London'", localTZ),
		"target_timezone": zoneHint("target", "'Asia/Tokyo', 'America/San_Francisco'", localTZ),
	})

	handle := mcp.NewToolWithRawSchema(ConvertTime, "Convert time between timezones", schema)
	handle.Annotations = readOnly("Convert time")

	return &ConvertTimeTool{
		BaseTool: tools.NewBaseTool(ConvertTime, handle),
		calc:     calc,
	}
}

// Handler converts the requested time and returns both renderings as JSON.
func (tool *ConvertTimeTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !utils.HasParams(request, "source_timezone", "time", "target_timezone") {
		return nil, tools.ErrMissingArguments
	}

	var args ConvertTimeArgs
	fields := []struct {
		key string
		dst *string
	}{
		{"source_timezone", &args.SourceTimezone},
		{"time", &args.Time},
		{"target_timezone", &args.TargetTimezone},
	}

	for _, field := range fields {
		value, err := utils.GetRequiredStringParam(request, field.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", tools.ErrInvalidParams, err)
		}
		*field.dst = value
	}

	result, err := tool.calc.ConvertTime(args.SourceTimezone, args.Time, args.TargetTimezone)
	if err != nil {
		return nil, err
	}

	return tools.NewJSONResult(result)
}
