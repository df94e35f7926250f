package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/rtfwriter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "설정 관리",
	Long: `rtfwriter 설정을 관리합니다.

설정 파일 위치: ~/.rtfwriter/config.yaml

하위 명령:
  show    현재 설정 표시
  init    기본 설정 파일 생성
  set     설정 값 변경
  path    설정 파일 경로 표시`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "현재 설정 표시",
	Long: `현재 적용된 설정을 표시합니다.

환경 변수가 설정되어 있으면 해당 값이 적용됩니다.
설정 파일이 없으면 기본값이 표시됩니다.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "기본 설정 파일 생성",
	Long: `기본 설정 파일을 ~/.rtfwriter/config.yaml에 생성합니다.

이미 설정 파일이 있는 경우 오류가 발생합니다.
기존 파일을 덮어쓰려면 --force 플래그를 사용하세요.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "설정 값 변경",
	Long: `설정 값을 변경합니다.

지원하는 키:
  page.size            용지 크기 (a4, a3, a5, letter, legal, ...)
  page.orientation     용지 방향 (portrait, landscape)
  page.margins         네 방향 여백 (pt)
  page.margins.top     위쪽 여백 (pt), right/bottom/left 동일
  locale               문서 언어 (en-US, ko-KR, ...)
  font.name            기본 글꼴
  font.size            기본 글자 크기 (pt, 0 = 지정 안 함)
  image.dpi            이미지 해상도 (기본: 96)
  image.max_size       이미지 최대 크기 (바이트, 0 = 제한 없음)

예시:
  rtfwriter config set page.size letter
  rtfwriter config set locale ko-KR
  rtfwriter config set page.margins 54`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "설정 파일 경로 표시",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newConfigLoader()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
		return nil
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "기존 설정 파일 덮어쓰기")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := newConfigLoader()
	if err != nil {
		return err
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// Show config file status
	if loader.Exists() {
		fmt.Fprintf(cmd.OutOrStdout(), "설정 파일: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "설정 파일: (기본값 사용)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("설정 출력 실패: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	fmt.Fprintln(cmd.OutOrStdout(), "환경 변수:")
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	envVars := []struct {
		key  string
		desc string
	}{
		{config.EnvLocale, "문서 언어 (locale)"},
		{config.EnvPaper, "용지 크기 (page.size)"},
		{config.EnvStrict, "엄격한 파싱"},
	}
	for _, ev := range envVars {
		status := "(미설정)"
		if v := os.Getenv(ev.key); v != "" {
			status = v
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, status)
	}
	return w.Flush()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := newConfigLoader()
	if err != nil {
		return err
	}

	if err := loader.Init(configForce); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("설정 파일이 이미 존재합니다: %s\n덮어쓰려면 --force 플래그를 사용하세요", loader.ConfigPath())
		}
		return fmt.Errorf("설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일 생성됨: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := newConfigLoader()
	if err != nil {
		return err
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("설정 변경 실패: %w", err)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("설정 저장 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 변경됨: %s = %s\n", key, value)
	return nil
}
