package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Principal is the resolved identity behind a bearer token. Admins take
// priority over customers when the same id exists in both tables.
type Principal struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"` // admin, user
	Role  string `json:"role,omitempty"`
}

func (p *Principal) IsAdmin() bool      { return p.Type == "admin" }
func (p *Principal) IsSuperAdmin() bool { return p.IsAdmin() && p.Role == string(models.RoleSuperAdmin) }

type AuthService interface {
	Signup(name, email, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	AdminLogin(email, password string) (*models.Admin, string, error)
	// Resolve verifies a bearer token and loads the principal it names.
	Resolve(token string) (*Principal, error)
}

type authService struct {
	userRepo   repository.UserRepository
	adminRepo  repository.AdminRepository
	jwtSecret  []byte
	bcryptCost int
	userTTL    time.Duration
	adminTTL   time.Duration
}

func NewAuthService(userRepo repository.UserRepository, adminRepo repository.AdminRepository, jwtSecret string, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
		userTTL:    7 * 24 * time.Hour,
		adminTTL:   time.Hour,
	}
}

func (s *authService) Signup(name, email, password string) (*models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", &ValidationError{Message: "All fields are required."}
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", &ValidationError{Message: "Email already registered."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID, s.userTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", &ValidationError{Message: "Email and password required."}
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", &ValidationError{Message: "Invalid credentials."}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", &ValidationError{Message: "Invalid credentials."}
	}

	token, err := s.issueToken(user.ID, s.userTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) AdminLogin(email, password string) (*models.Admin, string, error) {
	if email == "" || password == "" {
		return nil, "", &ValidationError{Message: "Email and password required."}
	}

	admin, err := s.adminRepo.GetActiveByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", &ValidationError{Message: "Invalid credentials."}
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", &ValidationError{Message: "Invalid credentials."}
	}

	if err := s.adminRepo.TouchLastLogin(admin.ID); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(admin.ID, s.adminTTL)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

func (s *authService) Resolve(tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, &AuthError{Message: "No token provided."}
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &AuthError{Message: "Invalid or expired token."}
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, &AuthError{Message: "Invalid or expired token."}
	}

	id, err := parseSubject(claims.Subject)
	if err != nil {
		return nil, &AuthError{Message: "Invalid or expired token."}
	}

	// Admins have priority over customers
	admin, err := s.adminRepo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		return &Principal{ID: admin.ID, Name: admin.Name, Email: admin.Email, Type: "admin", Role: admin.Role}, nil
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return &Principal{ID: user.ID, Name: user.Name, Email: user.Email, Type: "user"}, nil
	}

	return nil, &AuthError{Message: "User not found."}
}

func (s *authService) issueToken(id uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   formatSubject(id),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func formatSubject(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseSubject(subject string) (uint, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	return uint(id), err
}
