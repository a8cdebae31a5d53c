package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateAccessToken issues an HS256 token. The employee_code claim is
	// present only for accounts linked to an employee record.
	GenerateAccessToken(userID string, role string, employeeCode *string) (token string, expiresIn int, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey           string
	accessTokenLifetime string
	tokenAuth           *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenLifetime string) Service {
	return &JWTService{
		secretKey:           secretKey,
		accessTokenLifetime: accessTokenLifetime,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, role string, employeeCode *string) (string, int, error) {
	lifetime, err := time.ParseDuration(j.accessTokenLifetime)
	if err != nil {
		return "", 0, err
	}

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
		"exp":     time.Now().Add(lifetime).Unix(),
	}
	if employeeCode != nil {
		claims["employee_code"] = *employeeCode
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}

	return tokenString, int(lifetime.Seconds()), nil
}
