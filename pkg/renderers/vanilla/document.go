package vanilla

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-uibuilder/pkg/builder"
)

const (
	pageTemplate = "templates/page.tmpl"

	themeAssetStylesheet = "page.stylesheet"
)

// RenderDocument renders the element tree into a full HTML document,
// wiring theme CSS variables and the stylesheet asset into the shell when a
// theme is configured.
func (f *Factory) RenderDocument(ctx context.Context, root builder.Node, title string) (string, error) {
	if root == nil {
		return "", fmt.Errorf("vanilla: document root is required")
	}
	body, err := root.Render(ctx, f)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(title) == "" {
		title = "Page"
	}

	data := map[string]any{
		"title":      title,
		"body":       body,
		"stylesheet": f.stylesheetURL(),
		"css_vars":   cssVarsStyle(f.themeCSSVars()),
	}

	out, err := f.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return "", fmt.Errorf("vanilla: render document: %w", err)
	}
	return out, nil
}

func (f *Factory) stylesheetURL() string {
	if f.theme == nil || f.theme.AssetURL == nil {
		return ""
	}
	return f.theme.AssetURL(themeAssetStylesheet)
}

func (f *Factory) themeCSSVars() map[string]string {
	if f.theme == nil {
		return nil
	}
	return f.theme.CSSVars
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(":root{")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		sb.WriteString(name + ":" + vars[key] + ";")
	}
	sb.WriteString("}")
	return sb.String()
}
