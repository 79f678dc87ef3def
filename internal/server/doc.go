// Package server implements the MCP (Model Context Protocol) server for the
// BlurHash tools.
//
// The server speaks JSON-RPC 2.0 over stdio so MCP clients can hash images
// without shelling out to the batch CLI:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Log output goes to stderr only; stdout carries protocol traffic.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - blurhash_encode: Hash one image and return the string (nothing is written)
//   - blurhash_batch: Run the batch pipeline over files and directories,
//     writing <image>.bh artifacts unless write is false
//   - blurhash_components: Read the component grid back from a hash
//
// Tools that take components_x/components_y fall back to the grid the server
// was started with.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Per-file failures inside blurhash_batch are not tool errors; they are
// reported in the outcome list with their error kind.
//
// # Usage
//
//	srv := server.New(server.Options{Grid: blurhash.DefaultGrid, Log: log})
//	if err := srv.Run(ctx); err != nil {
//	    log.Error("server: %v", err)
//	}
package server
