package api

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func TestMCPTool_GenerateRoadmap(t *testing.T) {
	gen := &stubGenerator{response: `<div class="roadmap-phase">plan</div>`}
	handler := mcpGenerateRoadmap(MCPDeps{Generator: gen})

	req := makeCallToolRequest("generate_roadmap", map[string]interface{}{
		"name":       "Ana",
		"experience": "beginner",
		"timeframe":  "6 months",
	})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}
	if got := toolText(t, result); got != `<div class="roadmap-phase">plan</div>` {
		t.Errorf("tool text = %q", got)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(gen.prompts))
	}
	for _, want := range []string{"- Name: Ana", "Desired Roadmap Timeframe: 6 months"} {
		if !strings.Contains(gen.prompts[0], want) {
			t.Errorf("prompt missing %q:\n%s", want, gen.prompts[0])
		}
	}
}

func TestMCPTool_GenerateRoadmap_BlankResult(t *testing.T) {
	handler := mcpGenerateRoadmap(MCPDeps{Generator: &stubGenerator{response: ""}})

	result, err := handler(context.Background(), makeCallToolRequest("generate_roadmap", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := toolText(t, result); got != noRoadmapFragment {
		t.Errorf("tool text = %q, want fallback fragment", got)
	}
}

func TestMCPTool_ExplainTopic(t *testing.T) {
	gen := &stubGenerator{response: "<div>explained</div>"}
	handler := mcpExplainTopic(MCPDeps{Generator: gen})

	req := makeCallToolRequest("explain_topic", map[string]interface{}{
		"topic": "Phishing",
		"name":  "Ana",
	})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}
	if !strings.Contains(gen.prompts[0], "Teach the topic 'Phishing'") {
		t.Errorf("prompt missing topic:\n%s", gen.prompts[0])
	}
}

func TestMCPTool_ExplainTopic_MissingTopic(t *testing.T) {
	gen := &stubGenerator{response: "<div>never</div>"}
	handler := mcpExplainTopic(MCPDeps{Generator: gen})

	result, err := handler(context.Background(), makeCallToolRequest("explain_topic", map[string]interface{}{
		"name": "Ana",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for missing topic")
	}
	if len(gen.prompts) != 0 {
		t.Error("generator invoked despite missing topic")
	}
}

func TestMCPTool_GenerationFailureIsToolError(t *testing.T) {
	handler := mcpExplainTopic(MCPDeps{Generator: &stubGenerator{err: errors.New("quota exceeded")}})

	result, err := handler(context.Background(), makeCallToolRequest("explain_topic", map[string]interface{}{
		"topic": "Zero Trust",
	}))
	if err != nil {
		t.Fatalf("fault must not propagate as transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error result")
	}
	if !strings.Contains(toolText(t, result), "quota exceeded") {
		t.Errorf("tool error missing fault text: %s", toolText(t, result))
	}
}
