package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/image-optimizer/internal/batch"
	"github.com/ironsheep/image-optimizer/internal/imaging"
	"github.com/ironsheep/image-optimizer/internal/optimize"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_info", "image_optimize_jpeg").
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
// Malformed or missing tool arguments return -32602; tool execution errors
// return -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	var badArgs *invalidArgsError
	switch {
	case errors.As(err, &badArgs):
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	case err != nil:
		s.log.Warn("tool failed", zap.String("tool", params.Name), zap.Error(err))
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
	case "image_info":
		return s.handleImageInfo(args)
	case "image_quality_tier":
		return s.handleQualityTier(args)
	case "image_optimize_jpeg":
		return s.handleOptimizeJPEG(args)
	case "image_create_webp":
		return s.handleCreateWebP(args)
	case "image_optimize_batch":
		return s.handleOptimizeBatch(ctx, args)
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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// invalidArgsError marks a tool call whose arguments could not be used.
type invalidArgsError struct {
	err error
}

func (e *invalidArgsError) Error() string { return "invalid arguments: " + e.err.Error() }

func (e *invalidArgsError) Unwrap() error { return e.err }

func invalidArgs(err error) error {
	return &invalidArgsError{err: err}
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return invalidArgs(err)
	}
	return nil
}

// === Inspection Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func decodePathArgs(args json.RawMessage) (string, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return "", err
	}
	if a.Path == "" {
		return "", invalidArgs(errors.New("path is required"))
	}
	return a.Path, nil
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	path, err := decodePathArgs(args)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(path)
}

type qualityTierArgs struct {
	Path      string `json:"path"`
	SizeBytes *int64 `json:"size_bytes"`
}

type qualityTierResult struct {
	SizeBytes   int64         `json:"size_bytes"`
	Tier        optimize.Tier `json:"tier"`
	Description string        `json:"description"`
}

func (s *Server) handleQualityTier(args json.RawMessage) (interface{}, error) {
	var a qualityTierArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var size int64
	switch {
	case a.Path != "":
		fi, err := os.Stat(a.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		size = fi.Size()
	case a.SizeBytes != nil:
		if *a.SizeBytes < 0 {
			return nil, invalidArgs(fmt.Errorf("size_bytes must not be negative, got %d", *a.SizeBytes))
		}
		size = *a.SizeBytes
	default:
		return nil, invalidArgs(errors.New("path or size_bytes is required"))
	}

	tier := optimize.SelectTier(size)
	return &qualityTierResult{
		SizeBytes:   size,
		Tier:        tier,
		Description: tier.String(),
	}, nil
}

// === Transform Handlers ===

type transformResult struct {
	*optimize.Result
	ReductionPercent float64 `json:"reduction_percent"`
}

func (s *Server) handleOptimizeJPEG(args json.RawMessage) (interface{}, error) {
	path, err := decodePathArgs(args)
	if err != nil {
		return nil, err
	}
	res, err := s.opt.OptimizeJPEG(path)
	if err != nil {
		return nil, err
	}
	return &transformResult{Result: res, ReductionPercent: res.Reduction()}, nil
}

func (s *Server) handleCreateWebP(args json.RawMessage) (interface{}, error) {
	path, err := decodePathArgs(args)
	if err != nil {
		return nil, err
	}
	res, err := s.opt.CreateWebP(path)
	if err != nil {
		return nil, err
	}
	return &transformResult{Result: res, ReductionPercent: res.Reduction()}, nil
}

type optimizeBatchArgs struct {
	Paths []string `json:"paths"`
	WebP  *bool    `json:"webp"`
}

func (s *Server) handleOptimizeBatch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a optimizeBatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, invalidArgs(errors.New("paths is required"))
	}

	// stdout carries the protocol, so the console report is discarded.
	opts := []batch.Option{batch.WithOutput(io.Discard), batch.WithLogger(s.log)}
	if a.WebP != nil && !*a.WebP {
		opts = append(opts, batch.WithoutWebP())
	}

	stats := batch.NewRunner(s.opt, opts...).Run(ctx, a.Paths)
	return batch.NewReport(stats), nil
}
