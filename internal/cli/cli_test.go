package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/roboco-io/rtfwriter/internal/config"
	"github.com/roboco-io/rtfwriter/internal/demo"
	"github.com/roboco-io/rtfwriter/internal/ir"
)

const jsonDesc = `{
  "metadata": {"title": "Report", "author": "Kim"},
  "content": [
    {"type": "paragraph", "paragraph": {"text": "Hello RTF"}},
    {"type": "table", "table": {"rows": 2, "cols": 2, "width": 200,
      "merges": [{"row": 0, "col": 0, "row_span": 1, "col_span": 2}]}}
  ]
}`

const yamlDesc = `content:
  - type: paragraph
    paragraph:
      text: Hello YAML
`

func resetFlags() {
	verbose, quiet, configFile = false, false, ""
	renderOutput, renderFormat, renderStrict = "", "", false
	inspectFormat, inspectOutput, inspectStrict, inspectValidate = "text", "", false, false
	demoOutput, demoImage, demoOnly = "Demo.rtf", "", nil
	configForce = false
}

// execute runs the root command with cfgPath as the configuration file.
func execute(t *testing.T, cfgPath, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv(config.EnvLocale, "")
	t.Setenv(config.EnvPaper, "")
	t.Setenv(config.EnvStrict, "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSetVersion(t *testing.T) {
	oldVersion := version
	defer func() { version = oldVersion }()

	SetVersion("1.2.3")
	if version != "1.2.3" {
		t.Errorf("expected version '1.2.3', got '%s'", version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "rtfwriter" {
		t.Errorf("expected Use 'rtfwriter', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	for _, name := range []string{"render", "inspect", "demo", "config", "version"} {
		if _, _, err := rootCmd.Find([]string{name}); err != nil {
			t.Errorf("expected subcommand %q: %v", name, err)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	oldVersion := version
	defer func() { version = oldVersion }()
	version = "1.2.3"

	out, _, err := execute(t, filepath.Join(t.TempDir(), "config.yaml"), "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "rtfwriter 1.2.3\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRender_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "report.json", jsonDesc)
	out := filepath.Join(dir, "report.rtf")

	_, stderr, err := execute(t, filepath.Join(dir, "config.yaml"), "", "render", in, "-o", out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "변환 완료") {
		t.Errorf("expected completion log, got %q", stderr)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	rtf := string(data)
	for _, want := range []string{`{\rtf1`, `{\fs24 Hello RTF}`, `{\title Report}`, `\clmgf`, `\clmrg`} {
		if !strings.Contains(rtf, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRender_StdinToStdout(t *testing.T) {
	out, _, err := execute(t, filepath.Join(t.TempDir(), "config.yaml"), yamlDesc, "render", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, `{\rtf1`) {
		t.Errorf("expected RTF on stdout, got %q", out)
	}
	if !strings.Contains(out, `{\fs24 Hello YAML}`) {
		t.Errorf("expected paragraph text in output")
	}
}

func TestRender_DetectsFormatWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "report", yamlDesc)

	out, _, err := execute(t, filepath.Join(dir, "config.yaml"), "", "render", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `{\fs24 Hello YAML}`) {
		t.Errorf("expected paragraph text in output")
	}
}

func TestRender_UsesConfiguredPage(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if _, _, err := execute(t, cfgPath, "", "config", "set", "page.size", "letter"); err != nil {
		t.Fatalf("config set: %v", err)
	}

	out, _, err := execute(t, cfgPath, yamlDesc, "render", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\paperw12240\paperh15840`) {
		t.Errorf("expected letter page size in output")
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "missing file",
			args: []string{"render", filepath.Join(dir, "missing.json")},
			want: "파일을 찾을 수 없습니다",
		},
		{
			name: "unknown format flag",
			args: []string{"render", "-", "--format", "xml"},
			want: "지원하지 않는 입력 형식",
		},
		{
			name:  "invalid json",
			stdin: "{",
			args:  []string{"render", "-"},
			want:  "문서 설명 파싱 실패",
		},
		{
			name:  "build error carries path",
			stdin: `{"content": [{"type": "table"}]}`,
			args:  []string{"render", "-"},
			want:  "content[0]: missing table",
		},
		{
			name:  "strict rejects unknown field",
			stdin: `{"content": [], "colour": "red"}`,
			args:  []string{"render", "-", "--strict"},
			want:  "문서 설명 파싱 실패",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, cfgPath, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err)
			}
		})
	}
}

func TestRender_StrictFromEnv(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	stdin := `{"content": [], "colour": "red"}`

	if _, _, err := execute(t, cfgPath, stdin, "render", "-"); err != nil {
		t.Fatalf("unexpected error without strict mode: %v", err)
	}

	resetFlags()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs([]string{"--config", cfgPath, "render", "-"})
	t.Setenv(config.EnvStrict, "true")
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected strict parsing error")
	}
}

func TestRender_Quiet(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "report.json", jsonDesc)

	_, stderr, err := execute(t, filepath.Join(dir, "config.yaml"), "", "render", in, "-o", filepath.Join(dir, "out.rtf"), "-q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr != "" {
		t.Errorf("expected no log output in quiet mode, got %q", stderr)
	}
}

func TestRender_Verbose(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "report.json", jsonDesc)

	_, stderr, err := execute(t, filepath.Join(dir, "config.yaml"), "", "render", in, "-o", filepath.Join(dir, "out.rtf"), "-v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"level=DEBUG", "description parsed", "path=content[1]"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %q in debug log:\n%s", want, stderr)
		}
	}
}

func TestInspect_Text(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "report.json", jsonDesc)

	out, _, err := execute(t, filepath.Join(dir, "config.yaml"), "", "inspect", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"제목: Report", "작성자: Kim", "버전: 1.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	counts := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		if f := strings.Fields(line); len(f) == 2 {
			counts[f[0]] = f[1]
		}
	}
	for name, want := range map[string]string{"문단": "1", "표": "1", "이미지": "0"} {
		if counts[name] != want {
			t.Errorf("expected %s count %s, got %q", name, want, counts[name])
		}
	}
}

func TestInspect_ConvertsYAMLToJSON(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "report.yaml", yamlDesc)

	out, _, err := execute(t, filepath.Join(dir, "config.yaml"), "", "inspect", in, "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got ir.Document
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := ir.Document{
		Version: ir.Version,
		Content: []ir.Block{ir.ParagraphBlock(ir.NewParagraph("Hello YAML"))},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("description mismatch (-want +got):\n%s", diff)
	}
}

func TestInspect_Validate(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	good := writeFile(t, dir, "good.json", jsonDesc)
	if _, stderr, err := execute(t, cfgPath, "", "inspect", good, "--validate"); err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if !strings.Contains(stderr, "유효한 문서 설명입니다") {
		t.Errorf("expected validation message, got %q", stderr)
	}

	bad := writeFile(t, dir, "bad.json", `{"content": [{"type": "table", "table": {"rows": 2, "cols": 2, "width": 100,
		"merges": [{"row": 0, "col": 0, "row_span": 2, "col_span": 2}, {"row": 1, "col": 0, "row_span": 1, "col_span": 2}]}}]}`)
	_, _, err := execute(t, cfgPath, "", "inspect", bad, "--validate")
	if err == nil || !strings.Contains(err.Error(), "content[0].table.merges[1]") {
		t.Errorf("expected merge error, got %v", err)
	}
}

func TestDemo_List(t *testing.T) {
	out, _, err := execute(t, filepath.Join(t.TempDir(), "config.yaml"), "", "demo", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := fmt.Sprintf("총 %d개", demo.DefaultRegistry.Count())
	for _, want := range []string{"demo1", "Font setting", "demo7.1", "Hyperlink", "demo9", total} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDemo_Write(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "Demo.rtf")

	if _, _, err := execute(t, filepath.Join(dir, "config.yaml"), "", "demo", "-o", out, "--only", "demo8,demo2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	rtf := string(data)
	if !strings.Contains(rtf, "racter Formatting") || !strings.Contains(rtf, "Demo8: New page") {
		t.Errorf("expected selected demos in output")
	}
	if strings.Contains(rtf, "Demo9") {
		t.Errorf("expected unselected demos to be skipped")
	}
	if strings.Index(rtf, "racter Formatting") > strings.Index(rtf, "Demo8") {
		t.Errorf("expected demos in name order")
	}
}

func TestDemo_UnknownName(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "config.yaml"), "", "demo", "-o", "-", "--only", "demo42")
	if err == nil || !strings.Contains(err.Error(), "demo42") {
		t.Errorf("expected unknown demo error, got %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	out, _, err := execute(t, cfgPath, "", "config", "path")
	if err != nil || strings.TrimSpace(out) != cfgPath {
		t.Errorf("config path: got %q (%v)", out, err)
	}

	out, _, err = execute(t, cfgPath, "", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"(기본값 사용)", "size: a4", config.EnvLocale, config.EnvPaper} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	if _, _, err := execute(t, cfgPath, "", "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, _, err := execute(t, cfgPath, "", "config", "init"); err == nil || !strings.Contains(err.Error(), "--force") {
		t.Errorf("expected --force hint when config exists, got %v", err)
	}
	if _, _, err := execute(t, cfgPath, "", "config", "init", "--force"); err != nil {
		t.Errorf("config init --force: %v", err)
	}

	if _, _, err := execute(t, cfgPath, "", "config", "set", "locale", "ko-KR"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	if _, _, err := execute(t, cfgPath, "", "config", "set", "format.language", "ko"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, _, err := execute(t, cfgPath, "", "config", "set", "page.size", "b52"); err == nil {
		t.Error("expected error for invalid paper size")
	}

	cfg, err := config.NewLoaderWithPath(cfgPath).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "ko-KR" || cfg.Page.Size != "a4" {
		t.Errorf("unexpected saved config: locale=%q size=%q", cfg.Locale, cfg.Page.Size)
	}
}
