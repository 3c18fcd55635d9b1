package highlight

// Renderer turns a styled segment into output text.
type Renderer interface {
	Render(seg Segment) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(seg Segment) string

// Render calls f(seg).
func (f RendererFunc) Render(seg Segment) string {
	return f(seg)
}

// Plain renders segments without markup.
var Plain Renderer = RendererFunc(func(seg Segment) string { return seg.Text })

// Wrap returns a renderer that wraps every non-plain segment with the given
// markers, keyed by style. Plain text is passed through.
func Wrap(markers map[Style][2]string) Renderer {
	return RendererFunc(func(seg Segment) string {
		m, ok := markers[seg.Style]
		if !ok || seg.Style == StylePlain {
			return seg.Text
		}
		return m[0] + seg.Text + m[1]
	})
}
