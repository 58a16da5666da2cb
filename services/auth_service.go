package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Mohisvst29/moal/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the admin panel. There is a single admin account taken
// from the environment; customers never log in.
type AuthService struct {
	adminEmail   string
	passwordHash []byte
	jwtSecret    string
	jwtTTL       time.Duration
}

func NewAuthService(adminEmail, adminPassword, jwtSecret string, jwtTTL time.Duration) *AuthService {
	s := &AuthService{
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		jwtSecret:  jwtSecret,
		jwtTTL:     jwtTTL,
	}
	if adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Println("⚠️ hashing admin password failed:", err)
		} else {
			s.passwordHash = hash
		}
	} else {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, admin login disabled")
	}
	return s
}

// Login checks the admin credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.passwordHash == nil || s.adminEmail == "" || email != s.adminEmail {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(email, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", errors.New("cannot generate token")
	}
	return token, nil
}
