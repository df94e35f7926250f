// Package cli implements the rtfwriter command line interface.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roboco-io/rtfwriter/internal/config"
)

var version = "dev"

var (
	verbose    bool
	quiet      bool
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "rtfwriter",
	Short: "문서 설명(JSON/YAML)으로 RTF 문서 생성",
	Long: `rtfwriter는 JSON 또는 YAML로 작성된 문서 설명을 읽어
RTF 문서를 생성합니다.

문단, 글자 서식, 표(셀 병합, 테두리, 배경색), 이미지, 각주,
머리글/바닥글, 구역 나누기를 지원합니다.

예시:
  rtfwriter render report.yaml -o report.rtf
  rtfwriter inspect report.json
  rtfwriter demo -o Demo.rtf`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rtfwriter %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "상세 출력")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "조용한 모드")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "설정 파일 경로 (기본: ~/.rtfwriter/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger writes to the command's stderr. --quiet wins over --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func newConfigLoader() (*config.Loader, error) {
	if configFile != "" {
		return config.NewLoaderWithPath(configFile), nil
	}
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}
	return loader, nil
}

// loadConfig reads the configuration file and applies environment
// overrides.
func loadConfig() (*config.Config, error) {
	loader, err := newConfigLoader()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("잘못된 설정: %w", err)
	}
	return cfg, nil
}
