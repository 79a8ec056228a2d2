package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// imageProperty is the schema of the image argument shared by every tool.
func imageProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Image data as base64 text, with or without a data URI prefix (data:image/png;base64,...). Supported formats: PNG, JPEG, GIF, WebP, BMP, TIFF.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "analyze_image",
			Description: "Analyze an image and return its dimensions, format, color mode, orientation, aspect ratio, and a color summary.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
				},
				"required": []string{"image"},
			},
		},
		{
			Name:        "get_image_orientation",
			Description: "Classify an image as portrait, landscape, or square based on its dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
				},
				"required": []string{"image"},
			},
		},
		{
			Name:        "count_colors",
			Description: "Count the unique colors in an image and list the most dominant ones with their frequencies. Large images are downsampled to bound the scan cost, in which case counts are approximate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
					"sample_limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of pixels to scan (default 262144). Images with more pixels are uniformly downsampled first.",
						"default":     262144,
					},
					"top_n": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
				},
				"required": []string{"image"},
			},
		},
		{
			Name:        "extract_text_info",
			Description: "Estimate whether an image contains text using contrast and edge-density heuristics. Non-authoritative; does not perform OCR.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty(),
				},
				"required": []string{"image"},
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
