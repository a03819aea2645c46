package services

import (
	"errors"
	"os"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/shared"
)

// AuthService authenticates dashboard editors. There is no self-service
// signup; the first account is bootstrapped from env on start.
type AuthService struct {
	context.DefaultService

	sqlSvc *SqliteService
	jwtSvc *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	return svc.bootstrapAdmin()
}

func (svc *AuthService) bootstrapAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if _, err := svc.sqlSvc.GetAdminByEmail(email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = svc.sqlSvc.CreateAdmin(&model.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	log.Printf("Bootstrapped admin account %s", email)
	return nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := svc.sqlSvc.GetAdminByEmail(req.Email)
	if err != nil {
		return nil, shared.NewUnauthorizedError(errors.New("invalid credentials"), "Invalid email or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, shared.NewUnauthorizedError(errors.New("invalid credentials"), "Invalid email or password")
	}

	pair, err := svc.jwtSvc.GenerateTokenPair(admin.ID)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	return &dto.LoginResponse{
		Email: admin.Email,
		Token: *pair,
	}, nil
}

// RequiredAuth guards the admin route group
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get("Authorization"))
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.NewUnauthorizedError(err, "Invalid JWT token")
		}

		if userID == "" {
			return shared.NewUnauthorizedError(errors.New("empty subject"), "Invalid user ID in token")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}
