package view

// Fragment 结构化视图片段
// 不含任何渲染细节, 仅描述结构, 可在无界面测试中直接断言
type Fragment struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Fragment       `json:"children,omitempty"`
}

// El 构造容器片段
func El(kind string, children ...*Fragment) *Fragment {
	return &Fragment{Kind: kind, Children: children}
}

// Text 构造文本片段
func Text(kind, text string) *Fragment {
	return &Fragment{Kind: kind, Text: text}
}

// WithAttr 链式设置属性
func (f *Fragment) WithAttr(key, value string) *Fragment {
	if f.Attrs == nil {
		f.Attrs = make(map[string]string)
	}
	f.Attrs[key] = value
	return f
}

// WithText 链式设置文本
func (f *Fragment) WithText(text string) *Fragment {
	f.Text = text
	return f
}

// Append 追加子片段
func (f *Fragment) Append(children ...*Fragment) *Fragment {
	f.Children = append(f.Children, children...)
	return f
}

// Find 按kind深度优先查找第一个匹配的后代
func (f *Fragment) Find(kind string) *Fragment {
	if f == nil {
		return nil
	}
	if f.Kind == kind {
		return f
	}
	for _, child := range f.Children {
		if found := child.Find(kind); found != nil {
			return found
		}
	}
	return nil
}
