package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// Renderer renders manifest path templates against a project spec.
type Renderer struct {
	spec project.Spec
}

// NewRenderer creates a new renderer for the given spec.
func NewRenderer(spec project.Spec) *Renderer {
	return &Renderer{spec: spec}
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(content string) (string, error) {
	tmpl, err := template.New("path").Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", content, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.spec); err != nil {
		return "", fmt.Errorf("executing template %q: %w", content, err)
	}

	return buf.String(), nil
}

// RenderRenames resolves the To side of every rename in order.
func (r *Renderer) RenderRenames(renames []Rename) ([]Rename, error) {
	out := make([]Rename, 0, len(renames))
	for _, rn := range renames {
		to, err := r.RenderString(rn.To)
		if err != nil {
			return nil, err
		}
		if err := checkRelPath(to); err != nil {
			return nil, fmt.Errorf("rename of %s: %w", rn.From, err)
		}
		out = append(out, Rename{From: rn.From, To: to})
	}
	return out, nil
}
