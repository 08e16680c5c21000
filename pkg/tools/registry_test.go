package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
)

// stubTool echoes its name back as text.
type stubTool struct {
	*BaseTool
	calls int
}

func newStubTool(name string) *stubTool {
	return &stubTool{BaseTool: NewBaseTool(name, mcp.NewTool(name, mcp.WithDescription("stub "+name)))}
}

func (tool *stubTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tool.calls++
	return mcp.NewToolResultText(tool.Name()), nil
}

type schemaArgs struct {
	Zone  string `json:"zone" jsonschema_description:"static"`
	Label string `json:"label,omitempty"`
}

func newMockRequest(name string, args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args
	return request
}

func TestRegistry(t *testing.T) {
	Convey("Given a registry with two tools", t, func() {
		first, second := newStubTool("first"), newStubTool("second")
		registry := NewRegistry(first, second, newStubTool("first"))

		Convey("List should keep registration order and drop duplicates", func() {
			list := registry.List()
			So(len(list), ShouldEqual, 2)
			So(list[0].Name(), ShouldEqual, "first")
			So(list[1].Name(), ShouldEqual, "second")
			So(list[0], ShouldEqual, first)
		})

		Convey("Descriptors should mirror the list", func() {
			descriptors := registry.Descriptors()
			So(len(descriptors), ShouldEqual, 2)
			So(descriptors[0].Name, ShouldEqual, "first")
			So(descriptors[1].Description, ShouldEqual, "stub second")
		})

		Convey("Describe should find known tools only", func() {
			tool, ok := registry.Describe("second")
			So(ok, ShouldBeTrue)
			So(tool, ShouldEqual, second)

			_, ok = registry.Describe("third")
			So(ok, ShouldBeFalse)
		})

		Convey("Call should dispatch by name", func() {
			result, err := registry.Call(context.Background(), newMockRequest("second", map[string]any{}))
			So(err, ShouldBeNil)
			So(second.calls, ShouldEqual, 1)
			So(result.Content[0].(mcp.TextContent).Text, ShouldEqual, "second")
		})

		Convey("Call should reject unknown tools", func() {
			_, err := registry.Call(context.Background(), newMockRequest("third", nil))
			So(errors.Is(err, ErrUnknownTool), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "unknown tool: third")
		})
	})
}

func TestGenerateSchema(t *testing.T) {
	Convey("Given an argument struct", t, func() {
		raw := GenerateSchema[schemaArgs](map[string]string{"label": "runtime", "missing": "ignored"})

		var schema map[string]any
		So(json.Unmarshal(raw, &schema), ShouldBeNil)

		Convey("It should be an inline object schema", func() {
			So(schema["type"], ShouldEqual, "object")
			So(schema, ShouldNotContainKey, "$ref")
			So(schema, ShouldNotContainKey, "$schema")
			So(schema, ShouldNotContainKey, "additionalProperties")
		})

		Convey("Only non-omitempty fields should be required", func() {
			So(schema["required"], ShouldResemble, []any{"zone"})
		})

		Convey("Descriptions should come from tags and the runtime map", func() {
			props := schema["properties"].(map[string]any)
			So(props["zone"].(map[string]any)["description"], ShouldEqual, "static")
			So(props["zone"].(map[string]any)["type"], ShouldEqual, "string")
			So(props["label"].(map[string]any)["description"], ShouldEqual, "runtime")
			So(props, ShouldNotContainKey, "missing")
		})
	})
}

func TestNewJSONResult(t *testing.T) {
	Convey("Given a value", t, func() {
		result, err := NewJSONResult(map[string]any{"is_dst": true})

		Convey("It should produce one indented text block", func() {
			So(err, ShouldBeNil)
			So(len(result.Content), ShouldEqual, 1)
			So(result.IsError, ShouldBeFalse)

			text := result.Content[0].(mcp.TextContent)
			So(text.Type, ShouldEqual, "text")
			So(text.Text, ShouldEqual, "{\n    \"is_dst\": true\n}")
		})
	})
}
