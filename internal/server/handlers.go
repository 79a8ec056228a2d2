package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/imgspect/image-inspect-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "analyze_image").
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
// Analysis failures (bad payload, undecodable bytes) are recovered into
// the result as a structured error with "isError": true:
//
//	{
//	  "content": [{"type": "text", "text": "{\"error\": {\"kind\": ..., \"message\": ...}}"}],
//	  "isError": true
//	}
//
// so a bad image never reads as a protocol failure and never stops the
// server. Only protocol-level problems (malformed params, unknown tool)
// produce JSON-RPC errors.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var analysisErr *imaging.Error
		if errors.As(err, &analysisErr) {
			return s.analysisErrorResponse(req.ID, analysisErr)
		}
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
//  2. Applies default values for optional parameters
//  3. Normalizes and decodes the image payload
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "analyze_image":
		return s.handleAnalyzeImage(args)
	case "get_image_orientation":
		return s.handleGetImageOrientation(args)
	case "count_colors":
		return s.handleCountColors(args)
	case "extract_text_info":
		return s.handleExtractTextInfo(args)
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

// analysisErrorResponse wraps a recovered analysis error into a tool
// result carrying the error kind and message.
func (s *Server) analysisErrorResponse(id interface{}, analysisErr *imaging.Error) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(map[string]interface{}{"error": analysisErr}),
				},
			},
			"isError": true,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeImageArg normalizes and decodes the image argument every tool
// shares.
func decodeImageArg(payload string) (*imaging.Decoded, error) {
	return imaging.DecodePayload([]byte(payload))
}

// === Tool Handlers ===

type analyzeImageArgs struct {
	Image string `json:"image"`
}

func (s *Server) handleAnalyzeImage(args json.RawMessage) (interface{}, error) {
	var a analyzeImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := decodeImageArg(a.Image)
	if err != nil {
		return nil, err
	}
	return imaging.Analyze(img), nil
}

type getImageOrientationArgs struct {
	Image string `json:"image"`
}

func (s *Server) handleGetImageOrientation(args json.RawMessage) (interface{}, error) {
	var a getImageOrientationArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := decodeImageArg(a.Image)
	if err != nil {
		return nil, err
	}
	return imaging.ClassifyOrientation(img), nil
}

type countColorsArgs struct {
	Image       string `json:"image"`
	SampleLimit int    `json:"sample_limit"`
	TopN        int    `json:"top_n"`
}

func (s *Server) handleCountColors(args json.RawMessage) (interface{}, error) {
	var a countColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SampleLimit == 0 {
		a.SampleLimit = imaging.DefaultSampleLimit
	}
	if a.TopN == 0 {
		a.TopN = imaging.DefaultTopColors
	}
	img, err := decodeImageArg(a.Image)
	if err != nil {
		return nil, err
	}
	return imaging.CountColors(img, a.SampleLimit, a.TopN), nil
}

type extractTextInfoArgs struct {
	Image string `json:"image"`
}

func (s *Server) handleExtractTextInfo(args json.RawMessage) (interface{}, error) {
	var a extractTextInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := decodeImageArg(a.Image)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractTextInfo(img), nil
}
