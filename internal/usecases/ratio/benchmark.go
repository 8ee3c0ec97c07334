package ratio

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

type BenchmarkService interface {
	// Benchmarks retorna os valores padrão sobrescritos pelos valores gravados
	Benchmarks(ctx context.Context) domain.RatioBenchmarks
	Get(ctx context.Context) *domain.BenchmarksResponse
	Set(ctx context.Context, values map[string]any) (domain.RatioBenchmarks, error)
}

type benchmarkService struct {
	configRepo repository.AppConfigRepository
}

func NewBenchmarkService(configRepo repository.AppConfigRepository) BenchmarkService {
	return &benchmarkService{
		configRepo: configRepo,
	}
}

func (s *benchmarkService) Benchmarks(ctx context.Context) domain.RatioBenchmarks {
	merged := domain.DefaultBenchmarks()

	stored, err := s.configRepo.Get(ctx, domain.BenchmarksConfigKey)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao carregar referências gravadas, usando padrões")
		return merged
	}

	for key, value := range stored {
		if !domain.IsBenchmarkKey(key) {
			continue
		}
		if value == nil {
			merged[key] = nil
			continue
		}
		if number, ok := toFloat(value); ok {
			merged[key] = &number
		}
	}

	return merged
}

func (s *benchmarkService) Get(ctx context.Context) *domain.BenchmarksResponse {
	return &domain.BenchmarksResponse{
		Benchmarks: s.Benchmarks(ctx),
		Labels:     domain.BenchmarkLabels,
		KeysOrder:  domain.BenchmarkKeysOrder,
		Categories: domain.BenchmarkCategories,
	}
}

// Set grava apenas chaves conhecidas; cada valor deve ser numérico ou nulo
func (s *benchmarkService) Set(ctx context.Context, values map[string]any) (domain.RatioBenchmarks, error) {
	toSave := make(map[string]any, len(values))
	for key, value := range values {
		if !domain.IsBenchmarkKey(key) {
			continue
		}
		if value == nil {
			toSave[key] = nil
			continue
		}
		number, ok := toFloat(value)
		if !ok {
			return nil, NewRatioError(ErrInvalidBenchmark, apiErrors.ErrInvalidFormat,
				fmt.Sprintf("Valor inválido para %s: deve ser numérico ou nulo", key))
		}
		toSave[key] = number
	}

	if err := s.configRepo.Set(ctx, domain.BenchmarksConfigKey, toSave); err != nil {
		logrus.WithError(err).Error("Erro ao gravar referências")
		return nil, NewRatioError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar referências")
	}

	return s.Benchmarks(ctx), nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
