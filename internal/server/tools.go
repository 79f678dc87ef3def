package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func componentProperty(axis string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     1,
		"maximum":     9,
		"description": "Number of " + axis + " components (1-9). Defaults to the server's grid.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "blurhash_encode",
			Description: "Compute the BlurHash of one image file and return it. Nothing is written to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"components_x": componentProperty("horizontal"),
					"components_y": componentProperty("vertical"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "blurhash_batch",
			Description: "Compute BlurHashes for image files and directories (searched recursively for jpg, jpeg, png, gif, bmp, tiff). " +
				"Each image gets a sibling <name>.bh file; images that already have one are skipped. " +
				"Returns per-file outcomes and totals.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Image files or directories",
					},
					"components_x": componentProperty("horizontal"),
					"components_y": componentProperty("vertical"),
					"write": map[string]interface{}{
						"type":        "boolean",
						"description": "Write .bh files. Set false to only return hashes. Default true",
						"default":     true,
					},
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "blurhash_components",
			Description: "Read the component grid and expected length back from a BlurHash string.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hash": map[string]interface{}{
						"type":        "string",
						"description": "BlurHash string",
					},
				},
				"required": []string{"hash"},
			},
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
