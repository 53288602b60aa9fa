package abtest

import (
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис A/B-экспериментов.
// Назначение варианта детерминировано: один и тот же посетитель
// в одном эксперименте всегда получает один и тот же вариант.
// Счетчики показов и конверсий живут в памяти
type Service struct {
	experiments map[string]*domain.Experiment
	metrics     *metrics.Metrics
	logger      Logger

	mu          sync.Mutex
	impressions map[string]map[string]int64 // testID -> variant -> count
	conversions map[string]map[string]int64
}

// NewService создает новый экземпляр сервиса A/B-экспериментов
// metrics может быть nil, если метрики выключены
func NewService(experiments []*domain.Experiment, m *metrics.Metrics, logger Logger) *Service {
	byID := make(map[string]*domain.Experiment, len(experiments))
	impressions := make(map[string]map[string]int64, len(experiments))
	conversions := make(map[string]map[string]int64, len(experiments))

	for _, exp := range experiments {
		byID[exp.ID] = exp
		impressions[exp.ID] = make(map[string]int64, len(exp.Variants))
		conversions[exp.ID] = make(map[string]int64, len(exp.Variants))
	}

	return &Service{
		experiments: byID,
		metrics:     m,
		logger:      logger,
		impressions: impressions,
		conversions: conversions,
	}
}

// GetVariant возвращает вариант эксперимента для посетителя и учитывает показ
func (s *Service) GetVariant(testID, visitorID string) (*VariantResponse, error) {
	if strings.TrimSpace(visitorID) == "" {
		return nil, fmt.Errorf("%w: visitorID is required", ErrInvalidInput)
	}

	exp, ok := s.experiments[testID]
	if !ok {
		s.logger.Warn("GetVariant: experiment id=%s not found", testID)
		return nil, ErrTestNotFound
	}

	variant := assignVariant(exp, visitorID)

	s.mu.Lock()
	s.impressions[testID][variant]++
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ABImpressionsTotal.WithLabelValues(testID, variant).Inc()
	}

	s.logger.Info("GetVariant: test=%s, visitor=%s, variant=%s", testID, visitorID, variant)
	return &VariantResponse{TestID: testID, Variant: variant}, nil
}

// RecordConversion учитывает конверсию посетителя в эксперименте.
// Вариант выводится из visitorID, поэтому конверсия всегда
// засчитывается тому же варианту, который посетитель видел
func (s *Service) RecordConversion(testID, visitorID string) error {
	if strings.TrimSpace(visitorID) == "" {
		return fmt.Errorf("%w: visitorID is required", ErrInvalidInput)
	}

	exp, ok := s.experiments[testID]
	if !ok {
		s.logger.Warn("RecordConversion: experiment id=%s not found", testID)
		return ErrTestNotFound
	}

	variant := assignVariant(exp, visitorID)

	s.mu.Lock()
	s.conversions[testID][variant]++
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ABConversionsTotal.WithLabelValues(testID, variant).Inc()
	}

	s.logger.Info("RecordConversion: test=%s, visitor=%s, variant=%s", testID, visitorID, variant)
	return nil
}

// Stats возвращает статистику эксперимента по вариантам
func (s *Service) Stats(testID string) (*StatsResponse, error) {
	exp, ok := s.experiments[testID]
	if !ok {
		return nil, ErrTestNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	variants := make([]VariantStats, 0, len(exp.Variants))
	for _, v := range exp.Variants {
		impressions := s.impressions[testID][v.Name]
		conversions := s.conversions[testID][v.Name]

		rate := 0.0
		if impressions > 0 {
			rate = float64(conversions) / float64(impressions)
		}

		variants = append(variants, VariantStats{
			Variant:        v.Name,
			Weight:         v.Weight,
			Impressions:    impressions,
			Conversions:    conversions,
			ConversionRate: rate,
		})
	}

	return &StatsResponse{
		TestID:   exp.ID,
		Name:     exp.Name,
		Variants: variants,
	}, nil
}

// assignVariant детерминированно выбирает вариант по хешу "testID:visitorID".
// Вес варианта задает долю пространства хешей, попадающую на него
func assignVariant(exp *domain.Experiment, visitorID string) string {
	total := exp.TotalWeight()
	if total <= 0 || len(exp.Variants) == 0 {
		return ""
	}

	h := fnv.New32a()
	h.Write([]byte(exp.ID + ":" + visitorID))
	bucket := int(h.Sum32() % uint32(total))

	for _, v := range exp.Variants {
		bucket -= v.Weight
		if bucket < 0 {
			return v.Name
		}
	}

	return exp.Variants[len(exp.Variants)-1].Name
}
