package ratio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBenchmarkService_Benchmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConfigRepo := mocks.NewMockAppConfigRepository(ctrl)
	service := NewBenchmarkService(mockConfigRepo)
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, b domain.RatioBenchmarks)
	}{
		{
			name: "Sem valores gravados usa padrões",
			setup: func() {
				mockConfigRepo.EXPECT().Get(ctx, domain.BenchmarksConfigKey).Return(nil, nil)
			},
			validate: func(t *testing.T, b domain.RatioBenchmarks) {
				v, ok := b.Get("stock_turnover")
				require.True(t, ok)
				assert.Equal(t, 15.0, v)
				assert.Len(t, b, len(domain.BenchmarkKeysOrder))
			},
		},
		{
			name: "Valores gravados sobrescrevem padrões",
			setup: func() {
				mockConfigRepo.EXPECT().Get(ctx, domain.BenchmarksConfigKey).Return(map[string]any{
					"net_margin":     2.0,
					"stock_turnover": nil,
					"own_fund_to_wf": "abc",
					"desconhecida":   1.0,
				}, nil)
			},
			validate: func(t *testing.T, b domain.RatioBenchmarks) {
				v, _ := b.Get("net_margin")
				assert.Equal(t, 2.0, v)

				_, ok := b.Get("stock_turnover")
				assert.False(t, ok)

				v, _ = b.Get("own_fund_to_wf")
				assert.Equal(t, 8.0, v)

				assert.NotContains(t, b, "desconhecida")
			},
		},
		{
			name: "Falha no banco usa padrões",
			setup: func() {
				mockConfigRepo.EXPECT().Get(ctx, domain.BenchmarksConfigKey).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, b domain.RatioBenchmarks) {
				v, _ := b.Get("net_margin")
				assert.Equal(t, 1.0, v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			tt.validate(t, service.Benchmarks(ctx))
		})
	}
}

func TestBenchmarkService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConfigRepo := mocks.NewMockAppConfigRepository(ctrl)
	service := NewBenchmarkService(mockConfigRepo)
	ctx := context.Background()

	t.Run("Grava apenas chaves conhecidas", func(t *testing.T) {
		mockConfigRepo.EXPECT().
			Set(ctx, domain.BenchmarksConfigKey, map[string]any{"net_margin": 1.2, "stock_turnover": nil}).
			Return(nil)
		mockConfigRepo.EXPECT().
			Get(ctx, domain.BenchmarksConfigKey).
			Return(map[string]any{"net_margin": 1.2, "stock_turnover": nil}, nil)

		merged, err := service.Set(ctx, map[string]any{
			"net_margin":     1.2,
			"stock_turnover": nil,
			"extra":          5.0,
		})
		require.NoError(t, err)

		v, _ := merged.Get("net_margin")
		assert.Equal(t, 1.2, v)
	})

	t.Run("Valor não numérico", func(t *testing.T) {
		_, err := service.Set(ctx, map[string]any{"net_margin": "alto"})
		assert.ErrorIs(t, err, ErrInvalidBenchmark)
	})

	t.Run("Resposta inclui rótulos e categorias", func(t *testing.T) {
		mockConfigRepo.EXPECT().Get(ctx, domain.BenchmarksConfigKey).Return(nil, nil)

		response := service.Get(ctx)
		assert.Equal(t, domain.BenchmarkKeysOrder, response.KeysOrder)
		assert.NotEmpty(t, response.Categories)
		assert.Equal(t, "Net Margin (%)", response.Labels["net_margin"])
	})
}
