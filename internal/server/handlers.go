package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/rasteredit/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_open", "image_resize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// EditResult is returned by every tool that changes a session's image.
type EditResult struct {
	Operation string      `json:"operation"`
	Image     raster.Info `json:"image"`
}

// SaveResult is returned by image_save.
type SaveResult struct {
	Output string      `json:"output"`
	Format string      `json:"format,omitempty"`
	Image  raster.Info `json:"image"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.toolMu.Lock()
	result, err := s.executeTool(params.Name, params.Arguments)
	s.toolMu.Unlock()
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Parses colors and applies defaults for optional parameters
//  3. Looks up (or lazily opens) the session for the path
//  4. Calls the raster operation
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session Management
	case "image_open":
		return s.handleImageOpen(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_close":
		return s.handleImageClose(args)

	// Pixel Operations
	case "image_remove_color":
		return s.handleImageRemoveColor(args)
	case "image_change_color":
		return s.handleImageChangeColor(args)
	case "image_overlay":
		return s.handleImageOverlay(args)

	// Geometry Operations
	case "image_round_corners":
		return s.handleImageRoundCorners(args)
	case "image_resize":
		return s.handleImageResize(args)

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Output
	case "image_save":
		return s.handleImageSave(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and rejects a missing path.
func decodeArgs(args json.RawMessage, v interface{ path() string }) error {
	if err := json.Unmarshal(args, v); err != nil {
		return err
	}
	if v.path() == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// parseColorArg parses a named color argument.
func parseColorArg(name, value string) (raster.Color, error) {
	if value == "" {
		return raster.Color{}, fmt.Errorf("%s is required", name)
	}
	c, err := raster.ParseColor(value)
	if err != nil {
		return raster.Color{}, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// === Session Management Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (a *pathArgs) path() string { return a.Path }

type imageOpenArgs struct {
	pathArgs
	Output string `json:"output"`
}

func (s *Server) handleImageOpen(args json.RawMessage) (interface{}, error) {
	var a imageOpenArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ed, err := s.sessions.Open(a.Path, a.Output)
	if err != nil {
		return nil, err
	}
	return ed.Describe(), nil
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ed, err := s.sessions.Get(a.Path)
	if err != nil {
		return nil, err
	}
	return ed.Describe(), nil
}

func (s *Server) handleImageClose(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"path":   a.Path,
		"closed": s.sessions.Close(a.Path),
	}, nil
}

// === Pixel Operation Handlers ===

// edit runs op against the session for path and reports the new state.
func (s *Server) edit(path, operation string, op func(*raster.Editor) error) (interface{}, error) {
	ed, err := s.sessions.Get(path)
	if err != nil {
		return nil, err
	}
	if err := op(ed); err != nil {
		return nil, err
	}
	return &EditResult{Operation: operation, Image: ed.Describe()}, nil
}

type imageColorArgs struct {
	pathArgs
	Color string `json:"color"`
}

func (s *Server) handleImageRemoveColor(args json.RawMessage) (interface{}, error) {
	var a imageColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	key, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return s.edit(a.Path, "remove_color", func(ed *raster.Editor) error {
		return ed.RemoveColor(key)
	})
}

type imageChangeColorArgs struct {
	pathArgs
	OldColor string `json:"old_color"`
	NewColor string `json:"new_color"`
}

func (s *Server) handleImageChangeColor(args json.RawMessage) (interface{}, error) {
	var a imageChangeColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	from, err := parseColorArg("old_color", a.OldColor)
	if err != nil {
		return nil, err
	}
	to, err := parseColorArg("new_color", a.NewColor)
	if err != nil {
		return nil, err
	}
	return s.edit(a.Path, "change_color", func(ed *raster.Editor) error {
		return ed.ChangeColor(from, to)
	})
}

func (s *Server) handleImageOverlay(args json.RawMessage) (interface{}, error) {
	var a imageColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	tint, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return s.edit(a.Path, "overlay", func(ed *raster.Editor) error {
		return ed.Overlay(tint)
	})
}

// === Geometry Operation Handlers ===

type imageRoundCornersArgs struct {
	pathArgs
	Radius int `json:"radius"`
}

func (s *Server) handleImageRoundCorners(args json.RawMessage) (interface{}, error) {
	var a imageRoundCornersArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.edit(a.Path, "round_corners", func(ed *raster.Editor) error {
		return ed.RoundCorners(a.Radius)
	})
}

type imageResizeArgs struct {
	pathArgs
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Filter string `json:"filter"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	filter, err := raster.ParseFilter(a.Filter)
	if err != nil {
		return nil, err
	}
	return s.edit(a.Path, "resize", func(ed *raster.Editor) error {
		return ed.ResizeWith(ed.Image(), a.Width, a.Height, filter)
	})
}

// === Inspection Handlers ===

type imageSampleColorArgs struct {
	pathArgs
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ed, err := s.sessions.Get(a.Path)
	if err != nil {
		return nil, err
	}
	return raster.SampleColor(ed.Image(), a.X, a.Y)
}

// === Output Handlers ===

type imageSaveArgs struct {
	pathArgs
	Output string `json:"output"`
	Format string `json:"format"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ed, err := s.sessions.Get(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Output != "" {
		ed.SetOutput(a.Output)
	}
	if err := ed.Save(a.Format); err != nil {
		return nil, err
	}
	return &SaveResult{Output: ed.Output(), Format: a.Format, Image: ed.Describe()}, nil
}
