package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrInvalidEmail    = errors.New("a valid email address is required")
	ErrOTPNotRequested = errors.New("no sign-in code was requested for this email")
	ErrOTPExpired      = errors.New("sign-in code has expired")
	ErrOTPInvalid      = errors.New("sign-in code is invalid")
	ErrTokenGeneration = errors.New("failed to generate authentication token")
)

// Session is the authenticated cloud session for the current user.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CodeSender delivers one-time sign-in codes; email delivery is an external
// collaborator.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

// LogCodeSender "delivers" codes to the application log. Default for local
// runs without an email provider configured.
type LogCodeSender struct{}

func (LogCodeSender) SendCode(_ context.Context, email, code string) error {
	logrus.Infof("sign-in code for %s: %s", email, code)
	return nil
}

// --- Service Interface ---

// AuthService is the session-based cloud authentication collaborator:
// email OTP sign-in, sign-out and session-change notifications.
type AuthService interface {
	// SignInWithOTP generates a short-lived one-time code and sends it to
	// the given email address.
	SignInWithOTP(ctx context.Context, email string) error
	// VerifyOTP exchanges a delivered code for a JWT-backed session.
	// Codes are single use.
	VerifyOTP(ctx context.Context, email, code string) (token string, session *Session, err error)
	// SignOut ends the current session, if any.
	SignOut()
	// CurrentSession returns the active session or nil.
	CurrentSession() *Session
	// OnSessionChange registers a callback invoked with the new session
	// (nil on sign-out) after every session change.
	OnSessionChange(func(*Session))
	GetJWTSecret() string
}

// --- Service Implementation ---

type pendingOTP struct {
	codeHash  []byte
	expiresAt time.Time
}

type authService struct {
	sender        CodeSender
	jwtSecret     string
	jwtExpiration time.Duration
	otpTTL        time.Duration

	mu        sync.Mutex
	pending   map[string]pendingOTP // keyed by normalized email
	current   *Session
	listeners []func(*Session)
}

// NewAuthService creates the OTP auth service. Pending codes live in memory
// only; auth state is a collaborator concern, not an entity collection.
func NewAuthService(sender CodeSender, jwtSecret string, jwtExpiration, otpTTL time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	if sender == nil {
		sender = LogCodeSender{}
	}
	return &authService{
		sender:        sender,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		otpTTL:        otpTTL,
		pending:       make(map[string]pendingOTP),
	}
}

func (s *authService) SignInWithOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return ErrInvalidEmail
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("generate sign-in code: %w", err)
	}

	// Only the hash is retained; the plaintext code exists in the delivery
	// channel alone.
	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash sign-in code: %w", err)
	}

	s.mu.Lock()
	s.pending[email] = pendingOTP{
		codeHash:  codeHash,
		expiresAt: time.Now().Add(s.otpTTL),
	}
	s.mu.Unlock()

	return s.sender.SendCode(ctx, email, code)
}

func (s *authService) VerifyOTP(_ context.Context, email, code string) (string, *Session, error) {
	email = normalizeEmail(email)

	// Lookup, compare and consume under one lock: two racing verifications
	// of the same code must never both succeed.
	s.mu.Lock()
	otp, ok := s.pending[email]
	if !ok {
		s.mu.Unlock()
		return "", nil, ErrOTPNotRequested
	}
	if time.Now().After(otp.expiresAt) {
		delete(s.pending, email)
		s.mu.Unlock()
		return "", nil, ErrOTPExpired
	}
	if bcrypt.CompareHashAndPassword(otp.codeHash, []byte(code)) != nil {
		s.mu.Unlock()
		return "", nil, ErrOTPInvalid
	}
	delete(s.pending, email) // single use
	s.mu.Unlock()

	session := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	token, err := s.generateJWT(session)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	s.mu.Lock()
	s.current = session
	listeners := append([]func(*Session){}, s.listeners...)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(session)
	}
	return token, session, nil
}

func (s *authService) SignOut() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	listeners := append([]func(*Session){}, s.listeners...)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(nil)
	}
}

func (s *authService) CurrentSession() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *authService) OnSessionChange(listener func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(session *Session) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		SessionID: session.ID,
		Email:     session.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Email,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "reptrack",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// --- OTP helpers ---

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
