package jwt

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

const (
	RoleWorker  = "worker"
	RoleManager = "manager"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims identify one session. CSRF is a per-session secret the client must
// echo in the X-CSRF-Token header on state-changing worker calls.
type Claims struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name,omitempty"`
	CSRF      string    `json:"csrf"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Token struct {
	AccessToken string
	CSRFToken   string
	ExpiresAt   time.Time
}

type Service interface {
	GenerateAccessToken(subjectID uuid.UUID, role, name string) (Token, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	accessSecret    []byte
	accessExpiresIn time.Duration

	now func() time.Time
}

func NewHMACService(accessSecret string, accessExpiresIn time.Duration) *HMACService {
	return &HMACService{
		accessSecret:    []byte(accessSecret),
		accessExpiresIn: accessExpiresIn,
		now:             time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(subjectID uuid.UUID, role, name string) (Token, error) {
	if len(s.accessSecret) == 0 || s.accessExpiresIn <= 0 {
		return Token{}, ErrTokenInvalid
	}
	if subjectID == uuid.Nil || !validRole(role) {
		return Token{}, ErrTokenInvalid
	}

	csrf, err := newCSRFToken()
	if err != nil {
		return Token{}, err
	}

	now := s.now().UTC()
	exp := now.Add(s.accessExpiresIn)

	c := Claims{
		SubjectID: subjectID,
		Role:      role,
		Name:      name,
		CSRF:      csrf,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
			Subject:   subjectID.String(),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.accessSecret)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: signed, CSRFToken: csrf, ExpiresAt: exp}, nil
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.TokenType != TokenTypeAccess || c.SubjectID == uuid.Nil || !validRole(c.Role) || c.CSRF == "" {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

func validRole(role string) bool {
	return role == RoleWorker || role == RoleManager
}

func newCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
