// Package server implements the MCP (Model Context Protocol) server for image inspection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes image analysis
// capabilities through the MCP protocol. It's designed to work with Claude
// and other MCP-compatible clients, letting an LLM inspect images it is
// given without shipping them anywhere else.
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
// Every tool takes the image inline as base64 text (raw or data URI):
//   - analyze_image: Dimensions, format, color mode, orientation,
//     aspect ratio, and a color summary
//   - get_image_orientation: portrait / landscape / square
//   - count_colors: Unique-color census and dominant colors
//   - extract_text_info: Heuristic text-likelihood estimate (no OCR)
//
// # Request Independence
//
// There is no image cache and no state shared between calls: each
// request carries its own payload, which is decoded, analyzed, and
// discarded within the call. Concurrent transports need no locking
// around the analyses.
//
// # Error Handling
//
// Analysis failures - an empty or unrecognized payload, or bytes that
// no decoder accepts - are recovered at the tool boundary and returned
// inside the tool result as {"error": {"kind", "message"}} with the
// MCP "isError" flag, so the client sees a structured report rather
// than a protocol fault. JSON-RPC error codes are reserved for
// protocol-level problems:
//   - -32602: malformed tools/call params
//   - -32601: unknown method
//   - -32000: unknown tool or internal failure
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
