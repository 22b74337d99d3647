package parser

import (
	"reflect"
	"testing"
)

func TestDecodeComponentIntegration(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantBlocks  []Block
		wantDropped int
	}{
		{
			name: "components plus integration",
			raw:  "<<<COMPONENT: backend>>>\n# Plan\nDo X\n\n<<<COMPONENT: frontend>>>\n# Plan\nDo Y\n\n<<<INTEGRATION>>>\n# Integ\nZ",
			wantBlocks: []Block{
				{Kind: BlockComponent, Label: "backend", Body: "# Plan\nDo X"},
				{Kind: BlockComponent, Label: "frontend", Body: "# Plan\nDo Y"},
				{Kind: BlockIntegration, Body: "# Integ\nZ"},
			},
		},
		{
			name: "missing integration section is not fatal",
			raw:  "<<<COMPONENT: api>>>\nhandlers",
			wantBlocks: []Block{
				{Kind: BlockComponent, Label: "api", Body: "handlers"},
			},
		},
		{
			name: "leading prose is ignored",
			raw:  "Sure! Here is the plan you asked for.\n\n<<<COMPONENT: core>>>\nbody",
			wantBlocks: []Block{
				{Kind: BlockComponent, Label: "core", Body: "body"},
			},
		},
		{
			name: "case insensitive delimiters",
			raw:  "<<<component: Worker Pool>>>\nbody\n<<<integration>>>\nwiring",
			wantBlocks: []Block{
				{Kind: BlockComponent, Label: "worker_pool", Body: "body"},
				{Kind: BlockIntegration, Body: "wiring"},
			},
		},
		{
			name: "punctuation-only label is dropped but decoding continues",
			raw:  "<<<COMPONENT: --->>>\nlost\n<<<COMPONENT: keeper>>>\nkept",
			wantBlocks: []Block{
				{Kind: BlockComponent, Label: "keeper", Body: "kept"},
			},
			wantDropped: 1,
		},
		{
			name:       "empty input",
			raw:        "",
			wantBlocks: nil,
		},
		{
			name:       "no delimiters at all",
			raw:        "just a chatty response with no structure",
			wantBlocks: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, ComponentIntegration)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got.Blocks, tt.wantBlocks) {
				t.Errorf("Decode() blocks = %#v, want %#v", got.Blocks, tt.wantBlocks)
			}
			if got.Dropped != tt.wantDropped {
				t.Errorf("Decode() dropped = %d, want %d", got.Dropped, tt.wantDropped)
			}
		})
	}
}

// One block's body must never include text belonging to the next block, even
// when the response is malformed between the two.
func TestDecodeBoundaryContainment(t *testing.T) {
	raw := "<<<COMPONENT: first>>>\nbody of first\nstill first\n<<<COMPONENT: second>>>\nbody of second"
	got, err := Decode(raw, ComponentIntegration)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(got.Blocks))
	}
	if want := "body of first\nstill first"; got.Blocks[0].Body != want {
		t.Errorf("first body = %q, want %q", got.Blocks[0].Body, want)
	}
	if want := "body of second"; got.Blocks[1].Body != want {
		t.Errorf("second body = %q, want %q", got.Blocks[1].Body, want)
	}
}

// The integration token has no label, so a longer word sharing its prefix
// must not open an integration section.
func TestDecodeIntegrationTokenIsExact(t *testing.T) {
	raw := "<<<COMPONENT: backend>>>\nplan\n<<<INTEGRATION_NOTES: extra>>>\nstill the backend plan\n<<<INTEGRATION>>>\nwiring"
	got, err := Decode(raw, ComponentIntegration)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []Block{
		{Kind: BlockComponent, Label: "backend", Body: "plan\n<<<INTEGRATION_NOTES: extra>>>\nstill the backend plan"},
		{Kind: BlockIntegration, Body: "wiring"},
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Errorf("Decode() blocks = %#v, want %#v", got.Blocks, want)
	}
}

func TestDecodeFeatureComponentIntegration(t *testing.T) {
	raw := "<<<FEATURE: User Auth>>>\n" +
		"<<<COMPONENT: login api>>>\nlogin body\n" +
		"<<<COMPONENT: session store>>>\nsession body\n" +
		"<<<INTEGRATION>>>\nauth wiring\n" +
		"<<<FEATURE: Reporting>>>\n" +
		"<<<COMPONENT: report builder>>>\nreport body\n" +
		"<<<INTEGRATION>>>\nreport wiring\n"

	got, err := Decode(raw, FeatureComponentIntegration)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []Block{
		{Kind: BlockComponent, Label: "login_api", Body: "login body"},
		{Kind: BlockComponent, Label: "session_store", Body: "session body"},
		{Kind: BlockIntegration, Label: "user_auth", Body: "auth wiring"},
		{Kind: BlockComponent, Label: "report_builder", Body: "report body"},
		{Kind: BlockIntegration, Label: "reporting", Body: "report wiring"},
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Errorf("Decode() blocks = %#v, want %#v", got.Blocks, want)
	}
}

func TestDecodeFeatureWithUnusableName(t *testing.T) {
	// The integration path is derived from the feature name, so a
	// punctuation-only feature keeps its components but loses its integration.
	raw := "<<<FEATURE: !!!>>>\n<<<COMPONENT: worker>>>\nbody\n<<<INTEGRATION>>>\nwiring"
	got, err := Decode(raw, FeatureComponentIntegration)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []Block{{Kind: BlockComponent, Label: "worker", Body: "body"}}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Errorf("Decode() blocks = %#v, want %#v", got.Blocks, want)
	}
	if got.Dropped != 1 {
		t.Errorf("Decode() dropped = %d, want 1", got.Dropped)
	}
}

func TestDecodeKeyFeature(t *testing.T) {
	raw := "<<<KEY_FEATURE: Offline Mode>>>\nworks without network\n<<<KEY_FEATURE: Sync>>>\ntwo-way sync"
	got, err := Decode(raw, KeyFeature)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []Block{
		{Kind: BlockKeyFeature, Label: "offline_mode", Body: "works without network"},
		{Kind: BlockKeyFeature, Label: "sync", Body: "two-way sync"},
	}
	if !reflect.DeepEqual(got.Blocks, want) {
		t.Errorf("Decode() blocks = %#v, want %#v", got.Blocks, want)
	}
}

func TestDecodeFilenameBlocks(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBlocks []Block
	}{
		{
			name: "explicit close markers",
			raw:  "<<<FILENAME: tasks/task_aaa.md\nstep one\nstep two\n>>>\n<<<FILENAME: tasks/task_bbb.md\nother steps\n>>>",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "tasks/task_aaa.md", Body: "step one\nstep two"},
				{Kind: BlockFile, Label: "tasks/task_bbb.md", Body: "other steps"},
			},
		},
		{
			name: "missing close marker ends at next header",
			raw:  "<<<FILENAME: a.md\nfirst body\n<<<FILENAME: b.md\nsecond body\n>>>",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "a.md", Body: "first body"},
				{Kind: BlockFile, Label: "b.md", Body: "second body"},
			},
		},
		{
			name: "missing close marker ends at end of input",
			raw:  "<<<FILENAME: only.md\ncontent",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "only.md", Body: "content"},
			},
		},
		{
			name: "header may carry a trailing close token",
			raw:  "<<<FILENAME: diagrams/flow.mmd>>>\ngraph TD\n>>>",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "diagrams/flow.mmd", Body: "graph TD"},
			},
		},
		{
			name: "path label round-trips verbatim including traversal attempts",
			raw:  "<<<FILENAME: ../../etc/passwd\nmalicious\n>>>",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "../../etc/passwd", Body: "malicious"},
			},
		},
		{
			name: "path case is preserved",
			raw:  "<<<FILENAME: Docs/README.md\nhello\n>>>",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "Docs/README.md", Body: "hello"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, FilenameBlock)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got.Blocks, tt.wantBlocks) {
				t.Errorf("Decode() blocks = %#v, want %#v", got.Blocks, tt.wantBlocks)
			}
		})
	}
}

func TestDecodeFencedFilename(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBlocks []Block
	}{
		{
			name: "two adjacent blocks do not bleed",
			raw:  "```python filename=src/main.py\nprint(1)\n```\n```python filename=src/other.py\nprint(2)\n```",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "src/main.py", Body: "print(1)"},
				{Kind: BlockFile, Label: "src/other.py", Body: "print(2)"},
			},
		},
		{
			name: "missing closing fence ends at next tagged fence",
			raw:  "```go filename=a.go\npackage a\n```text filename=b.txt\nhello\n```",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "a.go", Body: "package a"},
				{Kind: BlockFile, Label: "b.txt", Body: "hello"},
			},
		},
		{
			name:       "untagged fences are not captured",
			raw:        "```python\nprint(1)\n```",
			wantBlocks: nil,
		},
		{
			name: "prose between blocks is ignored",
			raw:  "Here is the code:\n```text filename=requirements.txt\nflask>=2.0\n```\nHope that helps!",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "requirements.txt", Body: "flask>=2.0"},
			},
		},
		{
			name: "markdown content inside a tagged block",
			raw:  "```markdown filename=README.md\n# Title\nbody\n```",
			wantBlocks: []Block{
				{Kind: BlockFile, Label: "README.md", Body: "# Title\nbody"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, FencedFilename)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got.Blocks, tt.wantBlocks) {
				t.Errorf("Decode() blocks = %#v, want %#v", got.Blocks, tt.wantBlocks)
			}
		})
	}
}

func TestDecodeEmptyInputAllGrammars(t *testing.T) {
	grammars := []Grammar{ComponentIntegration, FeatureComponentIntegration, KeyFeature, FilenameBlock, FencedFilename}
	for _, g := range grammars {
		got, err := Decode("", g)
		if err != nil {
			t.Errorf("Decode(\"\", %s) error = %v", g, err)
			continue
		}
		if len(got.Blocks) != 0 || got.Dropped != 0 {
			t.Errorf("Decode(\"\", %s) = %#v, want empty result", g, got)
		}
	}
}

func TestDecodeUnknownGrammar(t *testing.T) {
	if _, err := Decode("anything", Grammar(99)); err == nil {
		t.Fatal("Decode() with unknown grammar should fail")
	}
}

// Decoding is a pure function: the same input must decode identically twice.
func TestDecodeIsDeterministic(t *testing.T) {
	raw := "<<<COMPONENT: a>>>\none\n<<<COMPONENT: b>>>\ntwo\n<<<INTEGRATION>>>\nthree"
	first, err := Decode(raw, ComponentIntegration)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	second, err := Decode(raw, ComponentIntegration)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated decode differs: %#v vs %#v", first, second)
	}
}

func TestTrimBlankLines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\n\nbody\n\n", "body"},
		{"body", "body"},
		{"  \nline one\n\nline two\n  \n", "line one\n\nline two"},
		{"", ""},
		{"\n\n", ""},
	}
	for _, tt := range tests {
		if got := trimBlankLines(tt.in); got != tt.want {
			t.Errorf("trimBlankLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
