package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// FormatRenderer dispatches on the topic file extension
type FormatRenderer struct {
	// Renderers maps an extension such as ".md" to its renderer
	Renderers map[string]Renderer
	// Fallback handles extensions without an entry; nil returns content unchanged
	Fallback Renderer
}

// Render picks the renderer registered for format
func (r *FormatRenderer) Render(content string, format string) string {
	if renderer, ok := r.Renderers[format]; ok {
		return renderer.Render(content, format)
	}
	if r.Fallback != nil {
		return r.Fallback.Render(content, format)
	}
	return content
}
