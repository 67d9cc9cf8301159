// Package mcp exposes the tool dispatcher over the Model Context Protocol on stdio.
package mcp

import (
	"context"
	"io"

	"github.com/bnema/maxential-thinking/internal/adapters/tools"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const ServerName = "maxential-thinking-server"

type caller interface {
	Call(ctx context.Context, name string, args map[string]any) tools.Result
}

// NewServer registers every catalog tool and forwards calls to the dispatcher.
func NewServer(dispatcher caller, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	for _, tool := range tools.Catalog() {
		s.AddTool(Definition(tool), Handler(dispatcher, tool.Name))
	}
	return s
}

// Serve blocks until ctx is canceled or the client closes stdin.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger *zap.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(zap.NewStdLog(logger))
	return stdio.Listen(ctx, in, out)
}

func Definition(tool tools.Tool) mcpgo.Tool {
	opts := []mcpgo.ToolOption{mcpgo.WithDescription(tool.Description)}
	for _, param := range tool.Params {
		opts = append(opts, paramOption(param))
	}
	return mcpgo.NewTool(tool.Name, opts...)
}

func paramOption(param tools.Param) mcpgo.ToolOption {
	props := []mcpgo.PropertyOption{mcpgo.Description(param.Description)}
	if param.Required {
		props = append(props, mcpgo.Required())
	}
	if len(param.Enum) > 0 {
		props = append(props, mcpgo.Enum(param.Enum...))
	}
	if param.Minimum != 0 {
		props = append(props, mcpgo.Min(float64(param.Minimum)))
	}
	if param.Maximum != 0 {
		props = append(props, mcpgo.Max(float64(param.Maximum)))
	}

	switch param.Type {
	case tools.ParamInteger:
		return mcpgo.WithNumber(param.Name, props...)
	case tools.ParamBoolean:
		return mcpgo.WithBoolean(param.Name, props...)
	case tools.ParamStrings:
		return mcpgo.WithArray(param.Name, append(props, mcpgo.WithStringItems())...)
	default:
		return mcpgo.WithString(param.Name, props...)
	}
}

// Handler adapts one tool to mcp-go. Tool failures travel as IsError results,
// never as protocol errors.
func Handler(dispatcher caller, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		result := dispatcher.Call(ctx, name, req.GetArguments())
		return &mcpgo.CallToolResult{
			Content: []mcpgo.Content{mcpgo.NewTextContent(result.Text)},
			IsError: result.IsError,
		}, nil
	}
}
