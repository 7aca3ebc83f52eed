package auth

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	errors "github.com/frahmantamala/asset-inventory/internal"
)

// Credential is the repository view of a user needed for authentication.
type Credential struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	IsActive     bool
}

type UserRepository interface {
	// GetByLogin resolves a username or email to a credential record.
	GetByLogin(login string) (*Credential, error)
	GetByID(id string) (*Credential, error)
	UpdateLastLogin(id string, at time.Time) error
}

// LoginResult is returned to a successfully authenticated client.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// Authenticate verifies credentials and issues a bearer token. A missing
// user, an inactive account and a wrong password are indistinguishable to
// the caller.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	cred, err := s.userRepo.GetByLogin(dto.Login)
	if err != nil {
		s.logger.Warn("login failed: user lookup", "login", dto.Login)
		return nil, errors.ErrInvalidCredentials
	}

	if !cred.IsActive {
		s.logger.Warn("login rejected: inactive account", "user_id", cred.ID)
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "user_id", cred.ID)
		return nil, errors.ErrInvalidCredentials
	}

	actor := &User{
		ID:         cred.ID,
		Username:   cred.Username,
		Email:      cred.Email,
		Role:       cred.Role,
		Department: cred.Department,
	}

	token, expiresAt, err := s.tokenGenerator.GenerateToken(actor)
	if err != nil {
		s.logger.Error("token generation failed", "error", err, "user_id", cred.ID)
		return nil, errors.NewInternalError("failed to issue token", err)
	}

	if err := s.userRepo.UpdateLastLogin(cred.ID, time.Now()); err != nil {
		// login already succeeded; a stale last_login is tolerable
		s.logger.Warn("failed to refresh last_login", "error", err, "user_id", cred.ID)
	}

	s.logger.Info("login successful", "user_id", cred.ID, "username", cred.Username)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *actor,
	}, nil
}

// ValidateToken checks signature and expiry only; callers must still load
// the live user via CurrentActor.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// CurrentActor reloads the live user record for the given id. Tokens of
// deactivated users fail here even while their signature is still valid,
// and role changes take effect on the next request.
func (s *Service) CurrentActor(userID string) (*User, error) {
	cred, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	if !cred.IsActive {
		return nil, errors.ErrUserInactive
	}

	return &User{
		ID:         cred.ID,
		Username:   cred.Username,
		Email:      cred.Email,
		Role:       cred.Role,
		Department: cred.Department,
	}, nil
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateToken creates a signed bearer token carrying the actor's
// identity and role.
func (j *JWTTokenGenerator) GenerateToken(u *User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.TokenTTL)

	claims := &Claims{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   u.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.ErrTokenExpired
		}
		return nil, errors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.ErrInvalidToken
}
