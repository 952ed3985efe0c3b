package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the session key shared by every tool.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the input image; identifies the editing session",
}

// colorProperty describes a color argument.
func colorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + ` as "#RRGGBB", "#RRGGBBAA" or "r,g,b"`,
	}
}

// objectSchema builds an object schema whose "path" property is always
// present and required.
func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	all := map[string]interface{}{"path": pathProperty}
	for k, v := range props {
		all[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": all,
		"required":   append([]string{"path"}, required...),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session Management
		{
			Name:        "image_open",
			Description: "Open an image for editing. Decodes the file and starts a new session, discarding any unsaved edits from a previous session on the same path.",
			InputSchema: objectSchema(map[string]interface{}{
				"output": map[string]interface{}{
					"type":        "string",
					"description": "Optional path that image_save writes to",
				},
			}),
		},
		{
			Name:        "image_info",
			Description: "Report the session's paths, current dimensions and whether the image is fully opaque.",
			InputSchema: objectSchema(nil),
		},
		{
			Name:        "image_close",
			Description: "Discard the editing session for a path without saving.",
			InputSchema: objectSchema(nil),
		},

		// Pixel Operations
		{
			Name:        "image_remove_color",
			Description: "Make every pixel whose red, green and blue each differ from the key color by less than 35 fully transparent.",
			InputSchema: objectSchema(map[string]interface{}{
				"color": colorProperty("Key color"),
			}, "color"),
		},
		{
			Name:        "image_change_color",
			Description: "Replace every pixel that exactly matches old_color (alpha ignored) with new_color, keeping each pixel's alpha.",
			InputSchema: objectSchema(map[string]interface{}{
				"old_color": colorProperty("Color to replace"),
				"new_color": colorProperty("Replacement color"),
			}, "old_color", "new_color"),
		},
		{
			Name:        "image_overlay",
			Description: "Recolor every pixel to one flat color while keeping the image's transparency mask.",
			InputSchema: objectSchema(map[string]interface{}{
				"color": colorProperty("Tint color"),
			}, "color"),
		},

		// Geometry Operations
		{
			Name:        "image_round_corners",
			Description: "Clip the image to an anti-aliased rounded rectangle. Radii beyond half the width or height produce a pill or ellipse.",
			InputSchema: objectSchema(map[string]interface{}{
				"radius": map[string]interface{}{
					"type":        "integer",
					"description": "Corner radius in pixels (>= 0)",
					"minimum":     0,
				},
			}, "radius"),
		},
		{
			Name:        "image_resize",
			Description: "Resample the session's current image to the given width and height.",
			InputSchema: objectSchema(map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Target width in pixels (> 0)",
					"minimum":     1,
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Target height in pixels (> 0)",
					"minimum":     1,
				},
				"filter": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"nearest", "box", "linear", "catmullrom", "lanczos"},
					"description": "Resampling filter. Default catmullrom",
					"default":     "catmullrom",
				},
			}, "width", "height"),
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the current color value at a pixel coordinate of the session's image.",
			InputSchema: objectSchema(map[string]interface{}{
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (0-based, from left)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (0-based, from top)",
				},
			}, "x", "y"),
		},

		// Output
		{
			Name:        "image_save",
			Description: "Encode the session's current image to its output path.",
			InputSchema: objectSchema(map[string]interface{}{
				"output": map[string]interface{}{
					"type":        "string",
					"description": "Output path; overrides the one given to image_open",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"png", "jpg", "jpeg", "gif", "tif", "tiff", "bmp"},
					"description": "Output format. Default: taken from the output file extension",
				},
			}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
