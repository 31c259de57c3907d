package services

import (
  "context"
  "errors"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/types"
)

type CompanyService interface {
  Create(ctx context.Context, company *types.Company) (*types.Company, error)
  List(ctx context.Context, page types.PageParams) ([]*types.Company, types.Pagination, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Company, error)
  Update(ctx context.Context, id uuid.UUID, patch types.CompanyPatch) (*types.Company, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type companyService struct {
  db          *gorm.DB
  log         *logger.Logger
  companyRepo repos.CompanyRepo
}

func NewCompanyService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo) CompanyService {
  return &companyService{
    db:          db,
    log:         log.With("service", "CompanyService"),
    companyRepo: companyRepo,
  }
}

func (cs *companyService) Create(ctx context.Context, company *types.Company) (*types.Company, error) {
  company.ID = uuid.New()
  created, err := cs.companyRepo.Create(ctx, nil, company)
  if err != nil {
    return nil, fmt.Errorf("failed to create company: %w", err)
  }
  cs.log.Info("company created", "company_id", created.ID)
  return created, nil
}

func (cs *companyService) List(ctx context.Context, page types.PageParams) ([]*types.Company, types.Pagination, error) {
  companies, total, err := cs.companyRepo.List(ctx, nil, page)
  if err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to list companies: %w", err)
  }
  if err := cs.companyRepo.AttachCounts(ctx, nil, companies); err != nil {
    return nil, types.Pagination{}, fmt.Errorf("failed to attach company counts: %w", err)
  }
  return companies, types.NewPagination(page.Page, page.Limit, total), nil
}

func (cs *companyService) GetByID(ctx context.Context, id uuid.UUID) (*types.Company, error) {
  company, err := cs.companyRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("COMPANY_NOT_FOUND", fmt.Errorf("company %s not found", id))
    }
    return nil, fmt.Errorf("failed to get company: %w", err)
  }
  if err := cs.companyRepo.AttachCounts(ctx, nil, []*types.Company{company}); err != nil {
    return nil, fmt.Errorf("failed to attach company counts: %w", err)
  }
  return company, nil
}

func (cs *companyService) Update(ctx context.Context, id uuid.UUID, patch types.CompanyPatch) (*types.Company, error) {
  updated, err := cs.companyRepo.Update(ctx, nil, id, patch)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("COMPANY_NOT_FOUND", fmt.Errorf("company %s not found", id))
    }
    return nil, fmt.Errorf("failed to update company: %w", err)
  }
  return updated, nil
}

func (cs *companyService) Delete(ctx context.Context, id uuid.UUID) error {
  if err := cs.companyRepo.Delete(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return apierr.NotFound("COMPANY_NOT_FOUND", fmt.Errorf("company %s not found", id))
    }
    return fmt.Errorf("failed to delete company: %w", err)
  }
  cs.log.Info("company deleted", "company_id", id)
  return nil
}
