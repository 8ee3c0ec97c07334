package company

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var companyErr *CompanyError
	require.True(t, errors.As(err, &companyErr))
	return companyErr.Code
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    *domain.Company
		setup    func()
		validate func(t *testing.T, company *domain.Company, err error)
	}{
		{
			name:  "Cria empresa com campos normalizados",
			input: &domain.Company{Name: "  XYZ Co-op Bank ", RegistrationNo: " REG-001 "},
			setup: func() {
				mockRepo.EXPECT().
					Create(ctx, &domain.Company{Name: "XYZ Co-op Bank", RegistrationNo: "REG-001"}).
					DoAndReturn(func(_ context.Context, c *domain.Company) (*domain.Company, error) {
						c.ID = 1
						return c, nil
					})
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, company.ID)
				assert.Equal(t, "XYZ Co-op Bank", company.Name)
			},
		},
		{
			name:  "Nome ausente",
			input: &domain.Company{RegistrationNo: "REG-001"},
			setup: func() {},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.ErrorIs(t, err, ErrNameRequired)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, err))
			},
		},
		{
			name:  "Registro duplicado",
			input: &domain.Company{Name: "Outra", RegistrationNo: "REG-001"},
			setup: func() {
				mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, repository.ErrDuplicate)
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.ErrorIs(t, err, ErrDuplicateRegistration)
				assert.Equal(t, apiErrors.ErrDuplicateResource, errorCode(t, err))
			},
		},
		{
			name:  "Falha no banco",
			input: &domain.Company{Name: "Outra", RegistrationNo: "REG-002"},
			setup: func() {
				mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			company, err := service.Create(ctx, tt.input)
			tt.validate(t, company, err)
		})
	}
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("Atualiza nome", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, 1).Return(&domain.Company{ID: 1, Name: "Antigo", RegistrationNo: "R1"}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		company, err := service.Update(ctx, &domain.Company{ID: 1, Name: "Novo", RegistrationNo: "R1"})
		require.NoError(t, err)
		assert.Equal(t, "Novo", company.Name)
	})

	t.Run("Atualiza empresa inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, 9).Return(nil, nil)

		_, err := service.Update(ctx, &domain.Company{ID: 9, Name: "X", RegistrationNo: "R"})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("Remove empresa", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, 1).Return(&domain.Company{ID: 1}, nil)
		mockRepo.EXPECT().Delete(ctx, 1).Return(nil)

		assert.NoError(t, service.Delete(ctx, 1))
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().
		List(ctx, domain.CompanyFilters{Search: "xyz"}).
		Return([]*domain.Company{{ID: 1, Name: "XYZ"}}, nil)

	companies, err := service.List(ctx, domain.CompanyFilters{Search: " xyz "})
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}
