package llm

// Type 是输出 schema 支持的字段类型。
type Type string

const (
	TypeString Type = "string"
	TypeNumber Type = "number"
	TypeArray  Type = "array"
	TypeObject Type = "object"
)

// Schema 是与具体服务商无关的 JSON 输出 schema，
// 由各个 provider 翻译成自己的格式。
type Schema struct {
	Type       Type
	Properties map[string]*Schema
	// PropertyOrder 固定属性的输出顺序，Gemini 会按此顺序生成字段。
	PropertyOrder []string
	Items         *Schema
	Required      []string
}

// String 构造字符串字段。
func String() *Schema { return &Schema{Type: TypeString} }

// Number 构造数字字段。
func Number() *Schema { return &Schema{Type: TypeNumber} }

// ArrayOf 构造元素类型为 items 的数组字段。
func ArrayOf(items *Schema) *Schema { return &Schema{Type: TypeArray, Items: items} }

// Field 是 Object 的一个具名属性。
type Field struct {
	Name   string
	Schema *Schema
}

// Object 按给定顺序构造对象，所有属性都是必填的。
func Object(fields ...Field) *Schema {
	s := &Schema{
		Type:          TypeObject,
		Properties:    make(map[string]*Schema, len(fields)),
		PropertyOrder: make([]string, 0, len(fields)),
		Required:      make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		s.Properties[f.Name] = f.Schema
		s.PropertyOrder = append(s.PropertyOrder, f.Name)
		s.Required = append(s.Required, f.Name)
	}
	return s
}
