package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Inspection
		{
			Name:        "image_info",
			Description: "Read an image file and return its dimensions, decoded format, color mode, whether it has alpha, and its size on disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_quality_tier",
			Description: "Return the JPEG/WebP quality and maximum width that would be used for a file of the given size. Files over 2 MB get quality 70 and 1920px, over 1 MB get quality 75 and 2400px, everything else quality 80 at original width.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Image file to measure. Takes precedence over size_bytes"),
					"size_bytes": map[string]interface{}{
						"type":        "integer",
						"description": "File size in bytes, used when path is not given",
						"minimum":     0,
					},
				},
			},
		},

		// Transforms
		{
			Name:        "image_optimize_jpeg",
			Description: "Recompress an image as a JPEG and OVERWRITE it in place. Transparency is flattened onto the configured background and wide images are scaled down according to the size tier. There is no backup.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image to overwrite"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_create_webp",
			Description: "Write a lossy WebP copy of an image next to it, replacing the extension with .webp. Transparency is kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the source image"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_optimize_batch",
			Description: "Optimize a list of images in place and write WebP siblings, one file at a time. Missing files are skipped. Returns per-file results and totals.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Image paths to process, in order",
					},
					"webp": map[string]interface{}{
						"type":        "boolean",
						"description": "Write WebP siblings. Default true",
						"default":     true,
					},
				},
				"required": []string{"paths"},
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
