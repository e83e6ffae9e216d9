package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONFound is returned when no JSON object or array can be located in a reply.
var ErrNoJSONFound = errors.New("no valid JSON object or array found in response")

// ExtractJSON 从模型回复中取出 JSON 文本。
// 带 schema 的 Gemini 回复本身就是纯 JSON；兼容 OpenAI 协议的模型常把 JSON
// 包在 ```json 代码块里或在前后附加说明文字，这里统一剥离。
func ExtractJSON(response string) (string, error) {
	return extract(response, "{[")
}

// ExtractJSONObject 与 ExtractJSON 相同，但在说明文字中只从 { 开始查找，
// 回复里类似 [1] 的方括号文字不会被当成结果。
func ExtractJSONObject(response string) (string, error) {
	return extract(response, "{")
}

func extract(response, opens string) (string, error) {
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		return "", ErrNoJSONFound
	}
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	cleaned := stripMarkdownFence(trimmed)
	if json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	// 依次尝试每个候选起点，直到配平的片段是合法 JSON
	for start := 0; start < len(cleaned); start++ {
		if strings.IndexByte(opens, cleaned[start]) < 0 {
			continue
		}
		if candidate := matchBrackets(cleaned, start); candidate != "" && json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}
	return "", ErrNoJSONFound
}

func stripMarkdownFence(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	body := s[start+3:]
	// 跳过语言标记，例如 ```json
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// matchBrackets 返回从 start 开始、括号配平的最短片段，忽略字符串内的括号。
func matchBrackets(s string, start int) string {
	var (
		depth    int
		inString bool
		escaped  bool
	)
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
