package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the access tokens the API consumes for the
// "current user identity and role" capability. Session management proper
// lives outside this backend.
type Service interface {
	GenerateAccessToken(userID string, employeeID string, role string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, employeeID string, role string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
