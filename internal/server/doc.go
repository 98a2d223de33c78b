// Package server implements the MCP (Model Context Protocol) server for the
// image optimizer.
//
// This package provides a JSON-RPC 2.0 server that exposes the optimizer's
// operations as MCP tools, so an assistant or editor integration can inspect
// and recompress images without shelling out to the CLI.
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
// Inspection:
//   - image_info: Dimensions, format, color mode and file size
//   - image_quality_tier: Quality and width cap chosen for a file size
//
// Transforms:
//   - image_optimize_jpeg: Recompress in place as JPEG (destructive)
//   - image_create_webp: Write a .webp sibling
//   - image_optimize_batch: Both transforms over a list of paths
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Diagnostics are written through the zap logger, never to stdout.
//
// # Usage
//
//	srv := server.New(optimizer, logger, version)
//	if err := srv.Run(ctx); err != nil {
//	    logger.Fatal("server error", zap.Error(err))
//	}
package server
