package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ports"
)

const defaultLookupTimeout = 3 * time.Second

// AuthService implements login and registration. Lookups prefer the
// persistent credential store and degrade to the built-in directory, so
// authentication stays attemptable when the store is down or unconfigured.
type AuthService struct {
	store         ports.CredentialStore     // nil when no persistent backend is configured
	fallback      ports.CredentialDirectory // built-in demo directory
	jwtSecret     string
	tokenTTL      time.Duration
	lookupTimeout time.Duration
	log           zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, fallback ports.CredentialDirectory, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		store:         store,
		fallback:      fallback,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		lookupTimeout: defaultLookupTimeout,
		log:           log,
	}
}

// Authenticate verifies (email, secret) and returns a signed session token
// plus the resolved principal. Unknown user and wrong secret are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, secret string) (string, *domain.Principal, error) {
	email = normalizeEmail(email)
	if email == "" || secret == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	rec := s.lookup(ctx, email)
	if rec == nil || !verifySecret(rec.Secret, secret) {
		return "", nil, domain.ErrInvalidCredentials
	}

	role := rec.Role
	if !role.Valid() {
		role = domain.RoleManager
	}

	principal := &domain.Principal{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
		Role:  role,
	}

	token, err := s.generateToken(principal)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", email).Str("role", string(role)).Msg("user authenticated")
	return token, principal, nil
}

// Register stores a new account in the persistent credential store. The
// secret is always bcrypt-hashed at write time; plaintext exists only in
// the seeded demo directory.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.Principal, error) {
	if s.store == nil {
		return nil, domain.ErrRegistrationDisabled
	}

	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrMissingField
	}
	if role == "" {
		role = domain.RoleTenant
	}
	if !role.Valid() {
		return nil, domain.ErrRoleNotPermitted
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, &domain.UserRecord{
		Name:   name,
		Email:  email,
		Secret: string(hash),
		Role:   role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("role", string(role)).Msg("user registered")
	return &domain.Principal{
		ID:    created.ID,
		Name:  created.Name,
		Email: created.Email,
		Role:  created.Role,
	}, nil
}

// lookup queries the persistent store first, bounded by lookupTimeout, and
// degrades to the built-in directory when the store is unconfigured, times
// out, errors, or has no record. Store failures never reach the caller.
func (s *AuthService) lookup(ctx context.Context, email string) *domain.UserRecord {
	if s.store != nil {
		storeCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
		rec, err := s.store.FindByEmail(storeCtx, email)
		cancel()
		switch {
		case err == nil && rec != nil:
			return rec
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			s.log.Warn().Err(err).Msg("credential store lookup failed, using built-in directory")
		}
	}

	rec, err := s.fallback.FindByEmail(ctx, email)
	if err != nil {
		return nil
	}
	return rec
}

func (s *AuthService) generateToken(p *domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub":   p.ID,
		"name":  p.Name,
		"email": p.Email,
		"role":  string(p.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// verifySecret routes hashed and seeded plaintext secrets through one
// comparison so callers never see the distinction. Stored bcrypt values are
// recognised by their "$2" version marker; everything else compares in
// constant time.
func verifySecret(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
