package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kalambet/certpath/internal/llm"
	"github.com/kalambet/certpath/internal/profile"
	"github.com/kalambet/certpath/internal/prompt"
)

// MCPDeps holds dependencies for the MCP server. The tools run the same
// compile-then-generate path as the HTTP handlers; only the transport and
// session handling differ (MCP callers pass the profile explicitly).
type MCPDeps struct {
	Generator llm.Generator
}

// NewMCPServer creates an MCP server exposing roadmap generation and topic
// explanation as tools.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"certpath",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("certpath generates personalized cybersecurity certification roadmaps and topic explanations."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("generate_roadmap",
			mcp.WithDescription("Generate a personalized cybersecurity certification roadmap as an HTML fragment."),
			mcp.WithString("name", mcp.Description("User's name")),
			mcp.WithString("age", mcp.Description("User's age")),
			mcp.WithString("experience", mcp.Description("Experience level, e.g. beginner")),
			mcp.WithString("current_certs", mcp.Description("Certifications already held")),
			mcp.WithString("interest", mcp.Description("Areas of interest")),
			mcp.WithString("timeframe", mcp.Description("Desired roadmap timeframe, e.g. 6 months")),
		),
		mcpGenerateRoadmap(deps),
	)

	s.AddTool(
		mcp.NewTool("explain_topic",
			mcp.WithDescription("Explain a certification or security topic as a short tutorial-style HTML fragment."),
			mcp.WithString("topic", mcp.Description("Topic to explain"), mcp.Required()),
			mcp.WithString("name", mcp.Description("User's name")),
			mcp.WithString("age", mcp.Description("User's age")),
			mcp.WithString("experience", mcp.Description("Experience level")),
			mcp.WithString("current_certs", mcp.Description("Certifications already held")),
			mcp.WithString("interest", mcp.Description("Areas of interest")),
		),
		mcpExplainTopic(deps),
	)

	return s
}

func mcpGenerateRoadmap(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p := profileFromArgs(req)
		timeframe := strings.TrimSpace(req.GetString("timeframe", ""))

		text, err := deps.Generator.Generate(ctx, prompt.Roadmap(p, timeframe))
		if err != nil {
			return mcpError(fmt.Sprintf("roadmap generation failed: %v", err)), nil
		}
		if strings.TrimSpace(text) == "" {
			text = noRoadmapFragment
		}
		return mcpText(text), nil
	}
}

func mcpExplainTopic(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topic, err := req.RequireString("topic")
		if err != nil || strings.TrimSpace(topic) == "" {
			return mcpError("topic is required"), nil
		}

		p := profileFromArgs(req)
		text, err := deps.Generator.Generate(ctx, prompt.Explanation(strings.TrimSpace(topic), p))
		if err != nil {
			return mcpError(fmt.Sprintf("explanation generation failed: %v", err)), nil
		}
		if strings.TrimSpace(text) == "" {
			text = noExplanationFragment
		}
		return mcpText(text), nil
	}
}

// profileFromArgs reuses the query-parameter extraction so MCP arguments
// get the same trimming and blank-dropping as HTTP parameters.
func profileFromArgs(req mcp.CallToolRequest) profile.Profile {
	values := url.Values{}
	for _, key := range []string{"name", "age", "experience", "current_certs", "interest"} {
		values.Set(key, req.GetString(key, ""))
	}
	return profile.FromValues(values, profile.Profile{})
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
