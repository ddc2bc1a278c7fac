package treefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flexbox "github.com/ineffably/moxijs-sub006"
)

const shellDoc = `
id = "root"
direction = "column"
width = "800"
height = "600"

[[children]]
id = "header"
height = "60"

[[children]]
id = "body"
grow = 1.0
gap = "10"

  [[children.children]]
  id = "sidebar"
  width = "200"

  [[children.children]]
  id = "content"
  grow = 1.0

[[children]]
id = "footer"
height = "40"
`

func TestParse_BuildsTree(t *testing.T) {
	root, err := Parse([]byte(shellDoc))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	if root.ID != "root" {
		t.Errorf("root.ID = %q, want %q", root.ID, "root")
	}
	if root.Style.Direction != flexbox.Column {
		t.Errorf("root direction = %v, want Column", root.Style.Direction)
	}
	kids := root.Children()
	if len(kids) != 3 {
		t.Fatalf("root has %d children, want 3", len(kids))
	}

	body := kids[1]
	if body.ID != "body" || body.Style.FlexGrow != 1 {
		t.Errorf("body = %q grow=%v, want body grow=1", body.ID, body.Style.FlexGrow)
	}
	if len(body.Children()) != 2 {
		t.Fatalf("body has %d children, want 2", len(body.Children()))
	}
	if got := body.Children()[0].Style.Width; got != flexbox.Fixed(200) {
		t.Errorf("sidebar width = %v, want Fixed(200)", got)
	}
}

func TestParse_TreeComputes(t *testing.T) {
	root, err := Parse([]byte(shellDoc))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	flexbox.Compute(root, 800, 600)

	body := root.Children()[1]
	if c := body.Computed(); c.Height != 500 {
		t.Errorf("body height = %v, want 500", c.Height)
	}
	content := body.Children()[1]
	// 800 minus the 200 sidebar and the 10 gap.
	if c := content.Computed(); c.Width != 590 {
		t.Errorf("content width = %v, want 590", c.Width)
	}
}

func TestParse_ValueStrings(t *testing.T) {
	doc := `
id = "root"
width = "fill"
height = "50%"
max_width = "300"
`
	root, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if root.Style.Width != flexbox.Fill() {
		t.Errorf("width = %v, want fill", root.Style.Width)
	}
	if root.Style.Height != flexbox.Percent(50) {
		t.Errorf("height = %v, want 50%%", root.Style.Height)
	}
	if root.Style.MaxWidth != flexbox.Fixed(300) {
		t.Errorf("max_width = %v, want Fixed(300)", root.Style.MaxWidth)
	}
}

func TestParse_Defaults(t *testing.T) {
	root, err := Parse([]byte(`id = "n"`))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := flexbox.DefaultStyle()
	if root.Style.FlexShrink != want.FlexShrink {
		t.Errorf("shrink = %v, want default %v", root.Style.FlexShrink, want.FlexShrink)
	}
	if !root.Style.Width.IsAuto() {
		t.Errorf("width = %v, want auto", root.Style.Width)
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		doc     string
		wantErr string
	}

	tests := map[string]tc{
		"bad toml": {
			doc:     `id = `,
			wantErr: "failed to decode",
		},
		"bad direction": {
			doc:     `direction = "diagonal"`,
			wantErr: "unknown direction",
		},
		"bad justify": {
			doc:     `justify = "middle"`,
			wantErr: "unknown justify",
		},
		"bad align": {
			doc:     `align_items = "top"`,
			wantErr: "unknown align",
		},
		"bad size in child": {
			doc: `
[[children]]
id = "child"
width = "12px"
`,
			wantErr: "child",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Parse succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_MalformedValueWrapsSentinel(t *testing.T) {
	_, err := Parse([]byte(`width = "wide"`))
	if !errors.Is(err, flexbox.ErrMalformedValue) {
		t.Errorf("error = %v, want wrapping ErrMalformedValue", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.toml")
	if err := os.WriteFile(path, []byte(shellDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if root.ID != "root" {
		t.Errorf("root.ID = %q, want %q", root.ID, "root")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatalf("Load succeeded for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, want read failure", err)
	}
}
