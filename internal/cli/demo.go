package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roboco-io/rtfwriter/internal/demo"
	"github.com/roboco-io/rtfwriter/internal/imageload"
)

var (
	demoOutput string
	demoImage  string
	demoOnly   []string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "예제 RTF 문서 생성",
	Long: `라이브러리 기능을 보여주는 예제 문서를 생성합니다.

글꼴, 글자 서식, 각주, 머리글/바닥글, 이미지, 표,
2줄 겹침(two-in-one), 하이퍼링크, 새 페이지, 책갈피 예제가
A4 가로 문서 하나에 순서대로 들어갑니다.

예시:
  rtfwriter demo
  rtfwriter demo -o Demo.rtf --image logo.png
  rtfwriter demo --only demo1,demo6`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "예제 목록 표시",
	Args:  cobra.NoArgs,
	RunE:  runDemoList,
}

func init() {
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "Demo.rtf", "출력 파일 경로 (- 는 stdout)")
	demoCmd.Flags().StringVar(&demoImage, "image", "", "이미지 예제에 사용할 그림 (기본: 생성된 PNG)")
	demoCmd.Flags().StringSliceVar(&demoOnly, "only", nil, "생성할 예제 이름 (쉼표로 구분)")

	demoCmd.AddCommand(demoListCmd)
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc := demo.NewDocument(&imageload.Loader{MaxBytes: cfg.Image.MaxSize})
	env := demo.NewEnv(doc, demoImage)
	if err := demo.Run(demo.DefaultRegistry, doc, env, demoOnly...); err != nil {
		return fmt.Errorf("예제 생성 실패: %w", err)
	}
	log.Debug("demos built", "blocks", doc.Len())

	if demoOutput == "-" {
		_, err := doc.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := doc.Save(demoOutput); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}
	log.Info("예제 생성 완료", "output", demoOutput)
	return nil
}

func runDemoList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "이름\t설명")
	fmt.Fprintln(w, "----\t----")
	for _, name := range demo.List() {
		d, err := demo.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", d.Name(), d.Description())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n총 %d개\n", demo.DefaultRegistry.Count())
	return nil
}
