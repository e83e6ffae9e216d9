package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"scholar-ai-go/internal/config"
	"testing"
)

func TestOpenAIClientGenerate(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat *struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"summary\":\"ok\"}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(config.LLMConfig{APIKey: "k", BaseURL: srv.URL, Model: "test-model"})
	text, err := c.Generate(context.Background(), Request{
		SystemInstruction: "be brief",
		Contents: []Message{
			{Role: RoleUser, Content: "hi"},
			{Role: RoleModel, Content: "hello"},
			{Role: RoleUser, Content: "summarise"},
		},
		Schema: Object(Field{Name: "summary", Schema: String()}),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != `{"summary":"ok"}` {
		t.Fatalf("text = %q", text)
	}

	if got.Model != "test-model" {
		t.Errorf("model = %q", got.Model)
	}
	wantRoles := []string{"system", "user", "assistant", "user"}
	if len(got.Messages) != len(wantRoles) {
		t.Fatalf("messages = %+v", got.Messages)
	}
	for i, role := range wantRoles {
		if got.Messages[i].Role != role {
			t.Errorf("messages[%d].role = %q, want %q", i, got.Messages[i].Role, role)
		}
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_schema" {
		t.Errorf("response_format = %+v", got.ResponseFormat)
	}
}

func TestOpenAIClientNoContents(t *testing.T) {
	c := NewOpenAIClient(config.LLMConfig{APIKey: "k", BaseURL: "http://127.0.0.1:0"})
	if _, err := c.Generate(context.Background(), Request{}); err != ErrNoContents {
		t.Fatalf("err = %v, want ErrNoContents", err)
	}
}

func TestMockClientFollowsSchema(t *testing.T) {
	schema := Object(
		Field{Name: "summary", Schema: String()},
		Field{Name: "quiz", Schema: ArrayOf(Object(Field{Name: "question", Schema: String()}))},
	)
	text, err := NewMockClient().Generate(context.Background(), Request{
		Contents: []Message{{Role: RoleUser, Content: "notes"}},
		Schema:   schema,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var out struct {
		Summary string `json:"summary"`
		Quiz    []struct {
			Question string `json:"question"`
		} `json:"quiz"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("unmarshal %q: %v", text, err)
	}
	if out.Summary == "" || len(out.Quiz) != 1 || out.Quiz[0].Question == "" {
		t.Fatalf("unexpected sample %+v", out)
	}
}

func TestDefaultParams(t *testing.T) {
	if p := DefaultParams(config.LLMGenerationConfig{}); p != nil {
		t.Fatalf("zero config should give nil params, got %+v", p)
	}
	p := DefaultParams(config.LLMGenerationConfig{Temperature: 0.3, MaxTokens: 512})
	if p == nil || p.Temperature == nil || *p.Temperature != 0.3 || p.TopP != nil || *p.MaxTokens != 512 {
		t.Fatalf("unexpected params %+v", p)
	}
}
