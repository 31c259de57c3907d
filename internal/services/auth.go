package services

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "strings"
  "time"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"
  "github.com/zultopia/freshsure-be/internal/apierr"
  "github.com/zultopia/freshsure-be/internal/logger"
  "github.com/zultopia/freshsure-be/internal/repos"
  "github.com/zultopia/freshsure-be/internal/requestdata"
  "github.com/zultopia/freshsure-be/internal/types"
)

type RegisterInput struct {
  Name      string
  Email     string
  Password  string
  Role      types.UserRole
  CompanyID uuid.UUID
}

type AuthService interface {
  Register(ctx context.Context, input RegisterInput) (*types.User, string, error)
  Login(ctx context.Context, email, password string) (*types.User, string, error)
  Profile(ctx context.Context) (*types.User, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
  db           *gorm.DB
  log          *logger.Logger
  userRepo     repos.UserRepo
  companyRepo  repos.CompanyRepo
  jwtSecretKey string
  tokenTTL     time.Duration
}

func NewAuthService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  companyRepo repos.CompanyRepo,
  jwtSecretKey string,
  tokenTTL time.Duration,
) AuthService {
  return &authService{
    db:           db,
    log:          log.With("service", "AuthService"),
    userRepo:     userRepo,
    companyRepo:  companyRepo,
    jwtSecretKey: jwtSecretKey,
    tokenTTL:     tokenTTL,
  }
}

func (as *authService) Register(ctx context.Context, input RegisterInput) (*types.User, string, error) {
  email := strings.ToLower(strings.TrimSpace(input.Email))

  if _, err := as.companyRepo.GetByID(ctx, nil, input.CompanyID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, "", apierr.Invalid("COMPANY_NOT_FOUND", fmt.Errorf("company %s does not exist", input.CompanyID))
    }
    return nil, "", fmt.Errorf("failed to look up company: %w", err)
  }

  exists, err := as.userRepo.EmailExists(ctx, nil, email)
  if err != nil {
    return nil, "", fmt.Errorf("failed to check email uniqueness: %w", err)
  }
  if exists {
    return nil, "", apierr.Conflict("EMAIL_TAKEN", fmt.Errorf("email %s is already registered", email))
  }

  hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
  if err != nil {
    return nil, "", fmt.Errorf("failed to hash password: %w", err)
  }

  user := &types.User{
    ID:           uuid.New(),
    Name:         strings.TrimSpace(input.Name),
    Email:        email,
    PasswordHash: string(hash),
    Role:         input.Role,
    CompanyID:    input.CompanyID,
  }

  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    created, cErr := as.userRepo.Create(ctx, tx, user)
    if cErr != nil {
      return fmt.Errorf("failed to create user: %w", cErr)
    }
    user = created
    return nil
  }); err != nil {
    return nil, "", err
  }

  token, err := as.generateToken(user)
  if err != nil {
    return nil, "", err
  }
  as.log.Info("user registered", "user_id", user.ID, "role", user.Role)
  return user, token, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*types.User, string, error) {
  email = strings.ToLower(strings.TrimSpace(email))

  user, err := as.userRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, "", apierr.New(http.StatusUnauthorized, "INVALID_CREDENTIALS", errors.New("invalid email or password"))
    }
    return nil, "", fmt.Errorf("failed to look up user: %w", err)
  }

  if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
    return nil, "", apierr.New(http.StatusUnauthorized, "INVALID_CREDENTIALS", errors.New("invalid email or password"))
  }

  token, err := as.generateToken(user)
  if err != nil {
    return nil, "", err
  }
  as.log.Info("user logged in", "user_id", user.ID)
  return user, token, nil
}

func (as *authService) Profile(ctx context.Context) (*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return nil, apierr.New(http.StatusUnauthorized, "UNAUTHENTICATED", errors.New("missing request identity"))
  }
  user, err := as.userRepo.GetByID(ctx, nil, rd.UserID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("USER_NOT_FOUND", fmt.Errorf("user %s not found", rd.UserID))
    }
    return nil, fmt.Errorf("failed to load profile: %w", err)
  }
  return user, nil
}

func (as *authService) generateToken(user *types.User) (string, error) {
  now := time.Now()
  claims := jwt.MapClaims{
    "sub":       user.ID.String(),
    "email":     user.Email,
    "role":      string(user.Role),
    "companyId": user.CompanyID.String(),
    "iat":       now.Unix(),
    "exp":       now.Add(as.tokenTTL).Unix(),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    return "", fmt.Errorf("failed to sign token: %w", err)
  }
  return signed, nil
}

// SetContextFromToken validates the bearer token and loads the caller
// identity into the request context.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !token.Valid {
    return ctx, apierr.New(http.StatusUnauthorized, "INVALID_TOKEN", errors.New("invalid or expired token"))
  }

  claims, ok := token.Claims.(jwt.MapClaims)
  if !ok {
    return ctx, apierr.New(http.StatusUnauthorized, "INVALID_TOKEN", errors.New("malformed token claims"))
  }

  sub, _ := claims["sub"].(string)
  userID, err := uuid.Parse(sub)
  if err != nil {
    return ctx, apierr.New(http.StatusUnauthorized, "INVALID_TOKEN", errors.New("malformed subject claim"))
  }
  companyRaw, _ := claims["companyId"].(string)
  companyID, err := uuid.Parse(companyRaw)
  if err != nil {
    return ctx, apierr.New(http.StatusUnauthorized, "INVALID_TOKEN", errors.New("malformed company claim"))
  }
  email, _ := claims["email"].(string)
  role, _ := claims["role"].(string)

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
    Email:       email,
    Role:        role,
    CompanyID:   companyID,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}
