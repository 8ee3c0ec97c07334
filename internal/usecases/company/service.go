package company

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

type CompanyService interface {
	List(ctx context.Context, filters domain.CompanyFilters) ([]*domain.Company, error)
	Get(ctx context.Context, id int) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	companyRepo repository.CompanyRepository
}

func NewService(companyRepo repository.CompanyRepository) CompanyService {
	return &Service{
		companyRepo: companyRepo,
	}
}

func (s *Service) List(ctx context.Context, filters domain.CompanyFilters) ([]*domain.Company, error) {
	filters.Search = strings.TrimSpace(filters.Search)

	companies, err := s.companyRepo.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar empresas")
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas")
	}

	return companies, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("company_id", id).Error("Erro ao buscar empresa")
		return nil, NewCompanyErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar empresa")
	}

	if company == nil {
		return nil, NewCompanyErrorWithID(ErrCompanyNotFound, apiErrors.ErrResourceNotFound, id, "Empresa não encontrada")
	}

	return company, nil
}

func (s *Service) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := normalize(company); err != nil {
		return nil, err
	}

	created, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, s.translate(err, 0)
	}

	logrus.WithField("company_id", created.ID).Info("Empresa criada")

	return created, nil
}

func (s *Service) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	existing, err := s.Get(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	if err := normalize(company); err != nil {
		return nil, err
	}

	existing.Name = company.Name
	existing.RegistrationNo = company.RegistrationNo

	if err := s.companyRepo.Update(ctx, existing); err != nil {
		return nil, s.translate(err, existing.ID)
	}

	return existing, nil
}

// Delete remove a empresa e, em cascata, seus períodos
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return s.translate(err, id)
	}

	logrus.WithField("company_id", id).Info("Empresa removida")

	return nil
}

func normalize(company *domain.Company) error {
	company.Name = strings.TrimSpace(company.Name)
	company.RegistrationNo = strings.TrimSpace(company.RegistrationNo)

	if company.Name == "" {
		return NewCompanyError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome da empresa é obrigatório")
	}

	if company.RegistrationNo == "" {
		return NewCompanyError(ErrRegistrationRequired, apiErrors.ErrMissingRequiredData, "Número de registro é obrigatório")
	}

	return nil
}

func (s *Service) translate(err error, id int) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return NewCompanyErrorWithID(ErrDuplicateRegistration, apiErrors.ErrDuplicateResource, id, "Já existe uma empresa com este número de registro")
	}

	logrus.WithError(err).WithField("company_id", id).Error("Erro ao gravar empresa")
	return NewCompanyErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao gravar empresa")
}
