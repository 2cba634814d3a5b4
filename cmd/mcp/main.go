// Command mcp exposes the content workflow as an MCP server over stdio, so
// MCP clients can generate and refine content as tools.
//
// Usage:
//
//	go run ./cmd/mcp
//
// Configuration for an MCP client:
//
//	{
//	    "mcpServers": {
//	        "alchemy": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/alchemy"
//	        }
//	    }
//	}
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/refine"
	"github.com/spetersoncode/alchemy/session"
	"github.com/spetersoncode/alchemy/workflow"
	"github.com/spetersoncode/alchemy/writer"
)

func main() {
	// MCP talks JSON over stdout; logs must stay on stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	chain, err := cfg.BuildChain(ctx)
	if err != nil {
		log.Fatal(err)
	}
	images := cfg.BuildImages()

	engine := workflow.NewEngine(workflow.Config{
		LLM:    chain,
		Images: images,
		Search: cfg.BuildSearch(),
	})
	var imageAgent *writer.ImageAgent
	if images != nil {
		imageAgent = writer.NewImageAgent(chain, images)
	}
	sess := session.New(engine, refine.New(chain, imageAgent))

	s := server.NewMCPServer(
		"alchemy",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.AddTool(mcp.NewTool("generate_content",
		mcp.WithDescription("Generate content (blog post, social post, image, or strategy brief) from a natural-language request"),
		mcp.WithString("query", mcp.Required(), mcp.Description("What to create, in natural language")),
		mcp.WithString("intent", mcp.Description("Optional intent override: blog, social, image, strategy, or research")),
	), generateHandler(sess))

	s.AddTool(mcp.NewTool("refine_content",
		mcp.WithDescription("Apply feedback to the most recently generated content"),
		mcp.WithString("feedback", mcp.Required(), mcp.Description("How the current content should change")),
	), refineHandler(sess))

	s.AddTool(mcp.NewTool("list_history",
		mcp.WithDescription("List the recent generation requests held in this session"),
	), historyHandler(sess))

	if err := server.ServeStdio(s); err != nil {
		log.Fatal(err)
	}
}

// generateArgs are the arguments for the generate_content tool.
type generateArgs struct {
	Query  string `json:"query"`
	Intent string `json:"intent"`
}

func generateHandler(sess *session.Session) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args generateArgs
		if err := unmarshalArgs(req, &args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if args.Query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		hint := ai.IntentUnknown
		if args.Intent != "" {
			parsed, ok := ai.ParseIntent(args.Intent)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("unknown intent %q", args.Intent)), nil
			}
			hint = parsed
		}

		return outputResult(sess.Handle(ctx, args.Query, hint))
	}
}

// refineArgs are the arguments for the refine_content tool.
type refineArgs struct {
	Feedback string `json:"feedback"`
}

func refineHandler(sess *session.Session) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args refineArgs
		if err := unmarshalArgs(req, &args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if args.Feedback == "" {
			return mcp.NewToolResultError("feedback is required"), nil
		}

		// The tool call itself says this is a refinement, so go straight to
		// the refiner instead of re-deciding from the feedback wording.
		out, ok := sess.Refine(ctx, args.Feedback)
		if !ok {
			return mcp.NewToolResultError("no content to refine; call generate_content first"), nil
		}
		return outputResult(out)
	}
}

func historyHandler(sess *session.Session) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries := sess.History()
		summary := make([]map[string]any, 0, len(entries))
		for i, e := range entries {
			summary = append(summary, map[string]any{
				"index":   i,
				"query":   e.Query,
				"intent":  e.Intent,
				"success": e.Output.Success,
			})
		}
		data, err := json.Marshal(summary)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// unmarshalArgs round-trips the request arguments through JSON into a typed
// struct.
func unmarshalArgs(req mcp.CallToolRequest, v any) error {
	if req.Params.Arguments == nil {
		return nil
	}
	data, err := json.Marshal(req.Params.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	return json.Unmarshal(data, v)
}

func outputResult(out *ai.FinalOutput) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !out.Success {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
