// Package server implements the MCP (Model Context Protocol) server for
// rasteredit's editing tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the raster
// editing operations through the MCP protocol, so an MCP client can open an
// image, apply a sequence of edits and save the result.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Session Management:
//   - image_open: Decode an image and start a fresh editing session
//   - image_info: Report paths, dimensions and opacity
//   - image_close: Discard a session without saving
//
// Pixel Operations:
//   - image_remove_color: Color-key near matches to transparency
//   - image_change_color: Replace one exact color with another
//   - image_overlay: Flat-tint the image, keeping its alpha
//
// Geometry Operations:
//   - image_round_corners: Clip to an anti-aliased rounded rectangle
//   - image_resize: Resample to a new width and height
//
// Inspection and Output:
//   - image_sample_color: Read the current color at a pixel
//   - image_save: Encode the session's image to its output path
//
// # Sessions
//
// Every tool takes the input image path, which identifies an editing
// session. Edits accumulate in memory until image_save writes them out;
// the file at the input path is only read once. Tools other than
// image_open start a session on demand for a path that has none.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.NewWithConfig(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
