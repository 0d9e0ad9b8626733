package service

import (
	"context"
	"fmt"

	"wisefido-sepsis/internal/config"
	"wisefido-sepsis/internal/insights"
	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"
	"wisefido-sepsis/internal/population"
	"wisefido-sepsis/internal/risk"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SepsisService 风险评分服务（整合各层）
type SepsisService struct {
	workers    int
	aggregator *risk.Aggregator
	analyzer   *population.Analyzer
	logger     *zap.Logger
}

// NewSepsisService 创建评分服务；model 为 nil 时使用规则模型
func NewSepsisService(cfg *config.Config, model risk.ClinicalModel, logger *zap.Logger) *SepsisService {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. 参考数据（只读，全局共享）
	table := norms.NewTable(logger)

	// 2. 洞察生成器（可关闭）
	var insightGen *insights.Generator
	if cfg.Scoring.IncludeInsights {
		insightGen = insights.NewGenerator(table)
	}

	workers := cfg.Scoring.Workers
	if workers <= 0 {
		workers = 1
	}

	return &SepsisService{
		workers:    workers,
		aggregator: risk.NewAggregator(table, model, insightGen, logger),
		analyzer:   population.NewAnalyzer(table, logger),
		logger:     logger,
	}
}

// ScorePatient 对单个患者评分
func (s *SepsisService) ScorePatient(record *models.PatientRecord) (*models.RiskProfile, error) {
	return s.aggregator.Score(record)
}

// ScorePopulation 并行评分后做人群分析
// 评分结果与输入顺序一致；任一记录非法则整批失败
func (s *SepsisService) ScorePopulation(ctx context.Context, records []*models.PatientRecord) ([]*models.RiskProfile, *models.PopulationReport, error) {
	profiles := make([]*models.RiskProfile, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, record := range records {
		if gctx.Err() != nil {
			break
		}
		i, record := i, record
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			profile, err := s.aggregator.Score(record)
			if err != nil {
				return fmt.Errorf("failed to score patient #%d: %w", i, err)
			}
			profiles[i] = profile
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	report := s.analyzer.Analyze(profiles)
	report.ReportID = uuid.NewString()

	s.logger.Info("Population scored",
		zap.String("report_id", report.ReportID),
		zap.Int("patients", len(profiles)),
		zap.Int("workers", s.workers),
	)
	return profiles, report, nil
}
