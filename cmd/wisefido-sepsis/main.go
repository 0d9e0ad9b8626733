package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"wisefido-sepsis/internal/config"
	"wisefido-sepsis/internal/export"
	"wisefido-sepsis/internal/logger"
	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/repository"
	"wisefido-sepsis/internal/service"

	"go.uber.org/zap"
)

// reportOutput 输出的 JSON 文档
type reportOutput struct {
	Report   *models.PopulationReport `json:"report"`
	Patients []*models.RiskProfile    `json:"patients"`
}

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "wisefido-sepsis")
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	// 3. 创建上下文（支持中断）
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("Sepsis risk scoring failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// 4. 读取患者记录
	source := repository.NewPatientFileSource(cfg.Report.InputPath, log)
	records, err := source.LoadPatients(ctx)
	if err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}

	// 5. 评分 + 人群分析
	svc := service.NewSepsisService(cfg, nil, log)
	profiles, report, err := svc.ScorePopulation(ctx, records)
	if err != nil {
		return err
	}

	// 6. 输出 JSON 报告
	if err := writeReport(cfg.Report.OutputPath, reportOutput{Report: report, Patients: profiles}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// 7. 可选：导出 Excel
	if cfg.Report.ExcelPath != "" {
		data, err := export.WritePopulationWorkbook(report, profiles)
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		if err := os.WriteFile(cfg.Report.ExcelPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write workbook %s: %w", cfg.Report.ExcelPath, err)
		}
		log.Info("Workbook exported", zap.String("path", cfg.Report.ExcelPath))
	}

	log.Info("Sepsis risk scoring completed",
		zap.String("report_id", report.ReportID),
		zap.Int("patients", report.Summary.TotalPatients),
		zap.Int("high_risk_patients", report.Summary.HighRiskPatients),
	)
	return nil
}

func writeReport(path string, out reportOutput) error {
	var w io.Writer = os.Stdout
	if path != "-" && path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
