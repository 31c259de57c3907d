package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/types"
)

type CompanyRepo interface {
  Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error)
  List(ctx context.Context, tx *gorm.DB, page types.PageParams) ([]*types.Company, int64, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Company, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.CompanyPatch) (*types.Company, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  AttachCounts(ctx context.Context, tx *gorm.DB, companies []*types.Company) error
}

type companyRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCompanyRepo(db *gorm.DB, baseLog *logger.Logger) CompanyRepo {
  return &companyRepo{db: db, log: baseLog.With("repo", "CompanyRepo")}
}

func (cr *companyRepo) Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  if err := transaction.WithContext(ctx).Create(company).Error; err != nil {
    return nil, err
  }
  return company, nil
}

func (cr *companyRepo) List(ctx context.Context, tx *gorm.DB, page types.PageParams) ([]*types.Company, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var total int64
  if err := transaction.WithContext(ctx).Model(&types.Company{}).Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Company
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Offset(page.Offset()).
    Limit(page.Limit).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}

func (cr *companyRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Company, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var result types.Company
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (cr *companyRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch types.CompanyPatch) (*types.Company, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  updates := map[string]interface{}{}
  if patch.Name != nil {
    updates["name"] = *patch.Name
  }
  if patch.CompanyType != nil {
    updates["company_type"] = *patch.CompanyType
  }
  if patch.Country != nil {
    updates["country"] = *patch.Country
  }
  if len(updates) > 0 {
    if err := transaction.WithContext(ctx).
      Model(&types.Company{}).
      Where("id = ?", id).
      Updates(updates).Error; err != nil {
      return nil, err
    }
  }
  return cr.GetByID(ctx, transaction, id)
}

func (cr *companyRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  res := transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Company{})
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return gorm.ErrRecordNotFound
  }
  return nil
}

// AttachCounts fills UserCount/BatchCount with one grouped query per
// relation rather than one count per row.
func (cr *companyRepo) AttachCounts(ctx context.Context, tx *gorm.DB, companies []*types.Company) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  if len(companies) == 0 {
    return nil
  }

  ids := make([]uuid.UUID, 0, len(companies))
  for _, c := range companies {
    ids = append(ids, c.ID)
  }

  type row struct {
    CompanyID uuid.UUID
    N         int64
  }

  var userRows []row
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Select("company_id, count(*) AS n").
    Where("company_id IN ?", ids).
    Group("company_id").
    Scan(&userRows).Error; err != nil {
    return err
  }

  var batchRows []row
  if err := transaction.WithContext(ctx).
    Model(&types.Batch{}).
    Select("owner_company_id AS company_id, count(*) AS n").
    Where("owner_company_id IN ?", ids).
    Group("owner_company_id").
    Scan(&batchRows).Error; err != nil {
    return err
  }

  users := map[uuid.UUID]int64{}
  for _, r := range userRows {
    users[r.CompanyID] = r.N
  }
  batches := map[uuid.UUID]int64{}
  for _, r := range batchRows {
    batches[r.CompanyID] = r.N
  }
  for _, c := range companies {
    u := users[c.ID]
    b := batches[c.ID]
    c.UserCount = &u
    c.BatchCount = &b
  }
  return nil
}
