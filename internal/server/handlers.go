package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/blurhash-tools/internal/blurhash"
	"github.com/ironsheep/blurhash-tools/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "blurhash_encode").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "blurhash_encode":
		return s.handleEncode(args)
	case "blurhash_batch":
		return s.handleBatch(ctx, args)
	case "blurhash_components":
		return s.handleComponents(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return errors.New("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// gridArgs are the optional component counts shared by the hashing tools.
type gridArgs struct {
	ComponentsX *int `json:"components_x"`
	ComponentsY *int `json:"components_y"`
}

// grid applies the overrides to the server default and validates the result.
func (g gridArgs) grid(def blurhash.Grid) (blurhash.Grid, error) {
	if g.ComponentsX != nil {
		def.X = *g.ComponentsX
	}
	if g.ComponentsY != nil {
		def.Y = *g.ComponentsY
	}
	if err := def.Validate(); err != nil {
		return blurhash.Grid{}, err
	}
	return def, nil
}

// === blurhash_encode ===

type encodeArgs struct {
	Path string `json:"path"`
	gridArgs
}

// EncodeResult is the blurhash_encode response.
type EncodeResult struct {
	Path        string `json:"path"`
	Hash        string `json:"hash"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ComponentsX int    `json:"components_x"`
	ComponentsY int    `json:"components_y"`
}

func (s *Server) handleEncode(args json.RawMessage) (interface{}, error) {
	var a encodeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	grid, err := a.grid(s.opts.Grid)
	if err != nil {
		return nil, err
	}

	pb, err := s.opts.Loader.Load(a.Path)
	if err != nil {
		return nil, err
	}
	hash, err := blurhash.Encode(pb.Pix, pb.Width, pb.Height, grid)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", a.Path, err)
	}

	return &EncodeResult{
		Path:        a.Path,
		Hash:        hash,
		Width:       pb.Width,
		Height:      pb.Height,
		ComponentsX: grid.X,
		ComponentsY: grid.Y,
	}, nil
}

// === blurhash_batch ===

type batchArgs struct {
	Paths []string `json:"paths"`
	Write *bool    `json:"write"`
	gridArgs
}

// BatchOutcome is one file's entry in a blurhash_batch response.
type BatchOutcome struct {
	Path     string `json:"path"`
	Artifact string `json:"artifact,omitempty"`
	Status   string `json:"status"`
	Hash     string `json:"hash,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// BatchResult is the blurhash_batch response.
type BatchResult struct {
	Stats       pipeline.Stats `json:"stats"`
	Written     bool           `json:"written"`
	ComponentsX int            `json:"components_x"`
	ComponentsY int            `json:"components_y"`
	Outcomes    []BatchOutcome `json:"outcomes"`
}

func (s *Server) handleBatch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a batchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, errors.New("paths must not be empty")
	}
	grid, err := a.grid(s.opts.Grid)
	if err != nil {
		return nil, err
	}
	write := a.Write == nil || *a.Write

	disc, err := pipeline.Discover(a.Paths, s.log)
	if err != nil {
		return nil, err
	}

	p := pipeline.NewProcessor(grid, s.opts.Workers, s.opts.Loader, s.log)
	p.DryRun = !write
	res := p.RunDiscovery(ctx, disc)

	stats := res.Stats()
	pipeline.LogSummary(s.log, stats)

	out := &BatchResult{
		Stats:       stats,
		Written:     write,
		ComponentsX: grid.X,
		ComponentsY: grid.Y,
		Outcomes:    []BatchOutcome{},
	}
	for _, o := range res.Outcomes() {
		bo := BatchOutcome{
			Path:     o.Path,
			Artifact: o.Artifact,
			Status:   o.Status.String(),
			Hash:     o.Hash,
			Reason:   o.Reason,
		}
		if o.Err != nil {
			bo.Error = o.Err.Error()
			bo.Kind = pipeline.Kind(o.Err)
		}
		out.Outcomes = append(out.Outcomes, bo)
	}
	return out, nil
}

// === blurhash_components ===

type componentsArgs struct {
	Hash string `json:"hash"`
}

// ComponentsResult is the blurhash_components response.
type ComponentsResult struct {
	ComponentsX int `json:"components_x"`
	ComponentsY int `json:"components_y"`
	Length      int `json:"length"`
}

func (s *Server) handleComponents(args json.RawMessage) (interface{}, error) {
	var a componentsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	g, err := blurhash.Components(a.Hash)
	if err != nil {
		return nil, err
	}
	return &ComponentsResult{ComponentsX: g.X, ComponentsY: g.Y, Length: g.HashLength()}, nil
}
