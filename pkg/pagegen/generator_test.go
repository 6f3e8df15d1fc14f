package pagegen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/openapi"
	"github.com/goliatone/go-uibuilder/pkg/pagegen"
)

func sampleOperation() openapi.Operation {
	return openapi.Operation{
		ID:      "createArticle",
		Method:  "POST",
		Path:    "/articles",
		Summary: "Create article",
		Request: openapi.Schema{
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]openapi.Schema{
				"title":        {Type: "string"},
				"published":    {Type: "boolean"},
				"rating":       {Type: "number"},
				"release_date": {Type: "string", Format: "date"},
				"category":     {Type: "string", Enum: []any{"news", "opinion"}},
			},
		},
	}
}

func childKinds(root builder.Node) []string {
	container := root.(*builder.Container)
	kinds := make([]string, 0)
	for _, child := range container.Children() {
		kinds = append(kinds, child.Kind())
	}
	return kinds
}

func TestBuildPage_FieldMapping(t *testing.T) {
	b := builder.New()
	root, err := pagegen.BuildPage(b, sampleOperation())
	if err != nil {
		t.Fatalf("build page: %v", err)
	}

	// Heading, five fields in name order, then the submit button.
	kinds := childKinds(root)
	if len(kinds) != 7 {
		t.Fatalf("expected 7 children, got %d: %v", len(kinds), kinds)
	}
	if kinds[0] != "h1" {
		t.Fatalf("first child should be the heading, got %q", kinds[0])
	}
	if kinds[1] != "selector" {
		t.Fatalf("category (enum) should map to selector, got %q", kinds[1])
	}
	if kinds[2] != "toggle" {
		t.Fatalf("published (boolean) should map to toggle, got %q", kinds[2])
	}
	if kinds[3] != "number" {
		t.Fatalf("rating (number) should map to number, got %q", kinds[3])
	}
	if kinds[4] != "date" {
		t.Fatalf("release_date (date format) should map to date, got %q", kinds[4])
	}
	if kinds[5] != "input" {
		t.Fatalf("title (string) should map to input, got %q", kinds[5])
	}
	if kinds[6] != "button" {
		t.Fatalf("last child should be the submit button, got %q", kinds[6])
	}
}

func TestBuildPage_FieldProperties(t *testing.T) {
	b := builder.New()
	root, err := pagegen.BuildPage(b, sampleOperation())
	if err != nil {
		t.Fatalf("build page: %v", err)
	}

	children := root.(*builder.Container).Children()

	// children[5] is the title input (fields sort alphabetically).
	title := children[5]
	if label, _ := title.Properties(false).Get("label"); label != "Title" {
		t.Fatalf("label mismatch: %v", label)
	}
	if required, _ := title.Properties(false).Get("required"); required != "true" {
		t.Fatalf("required flag missing: %v", required)
	}

	release := children[4]
	if label, _ := release.Properties(false).Get("label"); label != "Release date" {
		t.Fatalf("snake_case label mismatch: %v", label)
	}
	if _, ok := release.Properties(false).Get("required"); ok {
		t.Fatalf("optional field should not carry required")
	}

	category := children[1]
	lov, _ := category.Properties(false).Get("lov")
	values, ok := lov.([]string)
	if !ok || len(values) != 2 || values[0] != "news" {
		t.Fatalf("enum lov mismatch: %v", lov)
	}
}

func TestBuildPage_SubmitLabels(t *testing.T) {
	cases := []struct {
		method string
		want   string
	}{
		{"POST", "Submit"},
		{"DELETE", "Delete"},
		{"PUT", "Update"},
		{"PATCH", "Update"},
	}

	for _, tc := range cases {
		op := sampleOperation()
		op.Method = tc.method

		b := builder.New()
		root, err := pagegen.BuildPage(b, op)
		if err != nil {
			t.Fatalf("build page: %v", err)
		}
		children := root.(*builder.Container).Children()
		button := children[len(children)-1]
		if label, _ := button.Properties(false).Get("label"); label != tc.want {
			t.Fatalf("%s submit label mismatch: %v", tc.method, label)
		}
	}
}

type staticLoader struct {
	doc openapi.Document
}

func (l staticLoader) Load(ctx context.Context, src openapi.Source) (openapi.Document, error) {
	return l.doc, nil
}

type staticParser struct {
	operations map[string]openapi.Operation
}

func (p staticParser) Operations(ctx context.Context, doc openapi.Document) (map[string]openapi.Operation, error) {
	return p.operations, nil
}

func TestGenerator_Page(t *testing.T) {
	op := sampleOperation()
	gen := pagegen.New(
		pagegen.WithLoader(staticLoader{doc: openapi.MustNewDocument(openapi.SourceFromFS("x.json"), []byte("{}"))}),
		pagegen.WithParser(staticParser{operations: map[string]openapi.Operation{op.ID: op}}),
	)

	b := builder.New()
	root, err := gen.Page(context.Background(), b, openapi.SourceFromFS("x.json"), "createArticle")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if root.Kind() != "part" {
		t.Fatalf("root kind mismatch: %q", root.Kind())
	}

	_, err = gen.Page(context.Background(), b, openapi.SourceFromFS("x.json"), "missingOp")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("missing operation should fail, got %v", err)
	}
}
