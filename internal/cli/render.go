package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/rtfwriter/internal/build"
	"github.com/roboco-io/rtfwriter/internal/config"
	"github.com/roboco-io/rtfwriter/internal/imageload"
	"github.com/roboco-io/rtfwriter/internal/ir"
	"github.com/roboco-io/rtfwriter/internal/parser"
	"github.com/roboco-io/rtfwriter/internal/parser/jsondesc"
	"github.com/roboco-io/rtfwriter/internal/parser/yamldesc"
)

var (
	renderOutput string
	renderFormat string
	renderStrict bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "문서 설명을 RTF로 변환",
	Long: `JSON 또는 YAML 문서 설명을 RTF 문서로 변환합니다.

입력 형식은 확장자(.json, .yaml, .yml)로 판단하며, 확장자가 없으면
내용으로 감지합니다. 파일 대신 - 를 주면 표준 입력을 읽습니다.

용지, 방향, 언어, 기본 글꼴은 설정 파일 값을 사용하고
문서 설명의 page 항목이 있으면 그 값이 우선합니다.

환경 변수:
  RTFWRITER_LOCALE=xxx  문서 언어 (en-US, ko-KR, ...)
  RTFWRITER_PAPER=xxx   용지 크기 (a4, letter, ...)
  RTFWRITER_STRICT=true --strict 와 같음

예시:
  rtfwriter render report.yaml
  rtfwriter render report.json -o report.rtf
  cat report.yaml | rtfwriter render - --format yaml -o report.rtf`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "입력 형식 (json, yaml; 기본: 자동 감지)")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "알 수 없는 필드가 있으면 오류")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	opts, err := buildOptions(log)
	if err != nil {
		return err
	}

	strict := renderStrict || config.GetEnvBool(config.EnvStrict)
	desc, err := readDescription(cmd, args[0], renderFormat, strict)
	if err != nil {
		return err
	}
	log.Debug("description parsed", "input", args[0], "blocks", len(desc.Content))

	doc, err := build.Build(desc, opts)
	if err != nil {
		return fmt.Errorf("문서 생성 실패: %w", err)
	}

	if renderOutput == "" {
		_, err := doc.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := doc.Save(renderOutput); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}
	log.Info("변환 완료", "output", renderOutput)
	return nil
}

// buildOptions derives the document defaults from the configuration.
func buildOptions(log *slog.Logger) (build.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return build.Options{}, err
	}
	docOpts, err := cfg.DocumentOptions()
	if err != nil {
		return build.Options{}, err
	}
	docOpts.Loader = &imageload.Loader{MaxBytes: cfg.Image.MaxSize}
	return build.Options{
		Document: docOpts,
		FontSize: cfg.Font.Size,
		Logger:   log,
	}, nil
}

// readDescription parses path, or standard input when path is "-".
// formatName overrides format detection.
func readDescription(cmd *cobra.Command, path, formatName string, strict bool) (*ir.Document, error) {
	opts := parser.DefaultOptions()
	opts.Strict = strict

	format, err := parseFormatName(formatName)
	if err != nil {
		return nil, err
	}

	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("표준 입력 읽기 실패: %w", err)
		}
		if format == parser.FormatUnknown {
			if format, err = parser.DetectFormatFromReader(bytes.NewReader(data)); err != nil {
				return nil, fmt.Errorf("입력 형식 감지 실패: %w", err)
			}
		}
		return parse(newReaderParser(format, bytes.NewReader(data), opts))
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("파일을 찾을 수 없습니다: %s", path)
	}
	if format == parser.FormatUnknown {
		format = parser.DetectFormat(path)
	}
	if format == parser.FormatUnknown {
		if format, err = detectFileFormat(path); err != nil {
			return nil, err
		}
	}
	return parse(newFileParser(format, path, opts))
}

func parseFormatName(name string) (parser.Format, error) {
	switch strings.ToLower(name) {
	case "":
		return parser.FormatUnknown, nil
	case "json":
		return parser.FormatJSON, nil
	case "yaml", "yml":
		return parser.FormatYAML, nil
	default:
		return parser.FormatUnknown, fmt.Errorf("지원하지 않는 입력 형식: %s", name)
	}
}

func detectFileFormat(path string) (parser.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return parser.FormatUnknown, fmt.Errorf("파일 열기 실패: %w", err)
	}
	defer f.Close()

	format, err := parser.DetectFormatFromReader(f)
	if err != nil {
		return parser.FormatUnknown, fmt.Errorf("지원하지 않는 파일 형식입니다: %s (%w)", filepath.Base(path), err)
	}
	if format == parser.FormatUnknown {
		return parser.FormatUnknown, fmt.Errorf("지원하지 않는 파일 형식입니다: %s", filepath.Base(path))
	}
	return format, nil
}

func newFileParser(format parser.Format, path string, opts parser.Options) (parser.Parser, error) {
	switch format {
	case parser.FormatJSON:
		return jsondesc.New(path, opts)
	case parser.FormatYAML:
		return yamldesc.New(path, opts)
	default:
		return nil, fmt.Errorf("알 수 없는 형식: %s", format)
	}
}

func newReaderParser(format parser.Format, r io.Reader, opts parser.Options) (parser.Parser, error) {
	switch format {
	case parser.FormatJSON:
		return jsondesc.NewFromReader(r, opts), nil
	case parser.FormatYAML:
		return yamldesc.NewFromReader(r, opts), nil
	default:
		return nil, fmt.Errorf("알 수 없는 형식: %s", format)
	}
}

func parse(p parser.Parser, err error) (*ir.Document, error) {
	if err != nil {
		return nil, err
	}
	defer p.Close()

	doc, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("문서 설명 파싱 실패: %w", err)
	}
	return doc, nil
}
