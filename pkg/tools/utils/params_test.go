package utils

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"
)

func newMockRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = "convert_time"
	request.Params.Arguments = args
	return request
}

func TestParams(t *testing.T) {
	Convey("Given tool arguments", t, func() {
		req := newMockRequest(map[string]any{"time": "12:00", "zone": nil, "count": 3.0})

		Convey("HasParams should need every key set and non-nil", func() {
			So(HasParams(req, "time"), ShouldBeTrue)
			So(HasParams(req, "time", "zone"), ShouldBeFalse)
			So(HasParams(req, "missing"), ShouldBeFalse)
			So(HasParams(req), ShouldBeTrue)
		})

		Convey("GetStringParam should honour required", func() {
			val, err := GetStringParam(req, "zone", false)
			So(err, ShouldBeNil)
			So(val, ShouldBeEmpty)

			_, err = GetRequiredStringParam(req, "zone")
			So(err.Error(), ShouldEqual, "missing required parameter: 'zone'")
		})

		Convey("GetStringParam should reject non-strings", func() {
			_, err := GetRequiredStringParam(req, "count")
			So(err.Error(), ShouldEqual, "parameter 'count' must be a string")

			val, err := GetRequiredStringParam(req, "time")
			So(err, ShouldBeNil)
			So(val, ShouldEqual, "12:00")
		})
	})
}
