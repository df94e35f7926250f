package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/rtfwriter/internal/build"
	"github.com/roboco-io/rtfwriter/internal/ir"
)

var (
	inspectFormat   string
	inspectOutput   string
	inspectStrict   bool
	inspectValidate bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "문서 설명 요약 및 변환",
	Long: `문서 설명을 읽어 요약을 표시하거나 정규화된 JSON/YAML로 출력합니다.

출력 형식:
  text  제목, 작성자, 블록 수 요약 (기본)
  json  정규화된 JSON 문서 설명
  yaml  정규화된 YAML 문서 설명

--validate 플래그를 사용하면 RTF 문서를 실제로 생성해 보고
병합 충돌, 잘못된 위치 등의 오류를 보고합니다.

예시:
  rtfwriter inspect report.yaml
  rtfwriter inspect report.yaml --format json -o report.json
  rtfwriter inspect report.json --validate`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "출력 형식 (text, json, yaml)")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false, "알 수 없는 필드가 있으면 오류")
	inspectCmd.Flags().BoolVar(&inspectValidate, "validate", false, "RTF 생성까지 검사")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	desc, err := readDescription(cmd, args[0], "", inspectStrict)
	if err != nil {
		return err
	}

	if inspectValidate {
		if err := validate(desc, log); err != nil {
			return err
		}
		log.Info("유효한 문서 설명입니다", "input", args[0])
	}

	var w io.Writer = cmd.OutOrStdout()
	if inspectOutput != "" {
		f, err := os.Create(inspectOutput)
		if err != nil {
			return fmt.Errorf("파일 생성 실패: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeDescription(w, desc, inspectFormat); err != nil {
		return err
	}
	if inspectOutput != "" {
		log.Info("출력 완료", "output", inspectOutput)
	}
	return nil
}

func validate(desc *ir.Document, log *slog.Logger) error {
	opts, err := buildOptions(log)
	if err != nil {
		return err
	}
	if _, err := build.Build(desc, opts); err != nil {
		return fmt.Errorf("문서 생성 실패: %w", err)
	}
	log.Debug("description validated", "blocks", len(desc.Content))
	return nil
}

func writeDescription(w io.Writer, desc *ir.Document, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(desc)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			return err
		}
		return enc.Close()

	case "text":
		return writeSummary(w, desc)

	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %s", format)
	}
}

func writeSummary(w io.Writer, desc *ir.Document) error {
	if desc.Metadata.Title != "" {
		fmt.Fprintf(w, "제목: %s\n", desc.Metadata.Title)
	}
	if desc.Metadata.Author != "" {
		fmt.Fprintf(w, "작성자: %s\n", desc.Metadata.Author)
	}
	fmt.Fprintf(w, "버전: %s\n", desc.Version)
	if desc.Page.Size != "" || desc.Page.Orientation != "" {
		fmt.Fprintf(w, "용지: %s %s\n", desc.Page.Size, desc.Page.Orientation)
	}
	fmt.Fprintln(w)

	s := desc.Stats()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "항목\t개수")
	fmt.Fprintln(tw, "----\t----")
	for _, row := range []struct {
		name  string
		count int
	}{
		{"글꼴", len(desc.Fonts)},
		{"색상", len(desc.Colors)},
		{"문단", s.Paragraphs},
		{"표", s.Tables},
		{"셀 병합", s.Merges},
		{"이미지", s.Images},
		{"목록", s.Lists},
		{"구역", s.Sections},
		{"각주", s.Footnotes},
	} {
		fmt.Fprintf(tw, "%s\t%d\n", row.name, row.count)
	}
	return tw.Flush()
}
