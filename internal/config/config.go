package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 脓毒症风险评分配置
type Config struct {
	Log struct {
		Level  string
		Format string
	}

	// 评分配置
	Scoring struct {
		Workers         int  // 并行评分 worker 数，默认 4
		IncludeInsights bool // 是否生成临床提示，默认 true
	}

	// 报告配置
	Report struct {
		InputPath  string // 患者记录 JSON 文件；"-" 表示 stdin
		OutputPath string // 报告 JSON 输出；"-" 表示 stdout
		ExcelPath  string // 可选的 xlsx 导出路径，空表示不导出
	}
}

// Load 加载配置
// 设置 SEPSIS_ENV_FILE 时先加载该 .env 文件（已存在的环境变量优先）
func Load() (*Config, error) {
	if envFile := os.Getenv("SEPSIS_ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Scoring.Workers = parseInt(getEnv("SCORING_WORKERS", ""), 4)
	if cfg.Scoring.Workers <= 0 {
		return nil, fmt.Errorf("SCORING_WORKERS must be positive, got %d", cfg.Scoring.Workers)
	}
	cfg.Scoring.IncludeInsights = parseBool(getEnv("SCORING_INCLUDE_INSIGHTS", ""), true)

	cfg.Report.InputPath = getEnv("REPORT_INPUT_PATH", "-")
	cfg.Report.OutputPath = getEnv("REPORT_OUTPUT_PATH", "-")
	cfg.Report.ExcelPath = getEnv("REPORT_EXCEL_PATH", "")

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return b
}
