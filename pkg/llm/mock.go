package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// ClientFunc adapts an ordinary function to the Client interface.
type ClientFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f(ctx, req).
func (f ClientFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// MockClient 是离线开发用的客户端：文本请求回显最后一条消息，
// JSON 请求按 schema 生成一份占位数据。
type MockClient struct{}

// NewMockClient creates an offline Client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(_ context.Context, req Request) (string, error) {
	if len(req.Contents) == 0 {
		return "", ErrNoContents
	}
	if req.Schema == nil {
		last := req.Contents[len(req.Contents)-1]
		return fmt.Sprintf("(offline coach) You said: %q. Break it into one small step you can do in the next 25 minutes.", last.Content), nil
	}
	b, err := json.Marshal(sampleFor(req.Schema))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func sampleFor(s *Schema) interface{} {
	switch s.Type {
	case TypeString:
		return "sample"
	case TypeNumber:
		return 1
	case TypeArray:
		if s.Items == nil {
			return []interface{}{}
		}
		return []interface{}{sampleFor(s.Items)}
	case TypeObject:
		obj := make(map[string]interface{}, len(s.Properties))
		for name, prop := range s.Properties {
			obj[name] = sampleFor(prop)
		}
		return obj
	}
	return nil
}
