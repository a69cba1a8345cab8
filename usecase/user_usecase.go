package usecase

import (
	"context"
	"time"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/logger"
	"granitereply/infrastructure/utils"

	"github.com/golang-jwt/jwt"
)

type IUserUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) dto.Res
	Register(ctx context.Context, req model.ReqRegister) dto.Res
}

type userUsecase struct {
	userRepo  repository.IUser
	secretKey string
}

func NewUserUsecase(userRepo repository.IUser, secretKey string) IUserUsecase {
	return &userUsecase{userRepo: userRepo, secretKey: secretKey}
}

// Login checks the stored credential hash and issues a JWT carrying the
// user's organization.
func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) dto.Res {
	var res dto.Res

	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		logger.GetLogger().WithField("user_name", req.UserName).Info("User not found")
		res.ResponseCode = "401"
		res.ResponseMessage = "Invalid username or password"
		return res
	}
	if user.Password != req.Password {
		res.ResponseCode = "401"
		res.ResponseMessage = "Invalid username or password"
		return res
	}

	now := utils.GetCurrentTime()
	claims := model.UserClaims{
		UserName:       user.UserName,
		OrganizationID: user.OrganizationID,
		StandardClaims: jwt.StandardClaims{
			Issuer:    user.UserName,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(24 * time.Hour).Unix(),
		},
	}
	token, err := utils.GenerateToken(claims, u.secretKey)
	if err != nil {
		res.ResponseCode = "500"
		res.ResponseMessage = "Error while generating token"
		return res
	}

	res.ResponseCode = "200"
	res.ResponseMessage = "Success"
	res.Data = map[string]interface{}{
		"token":           token,
		"user_name":       user.UserName,
		"organization_id": user.OrganizationID,
	}
	return res
}

// Register creates an account; the handler hashes the password before it
// reaches this layer.
func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister) dto.Res {
	var res dto.Res

	if _, err := u.userRepo.GetByUserName(ctx, req.UserName); err == nil {
		res.ResponseCode = "409"
		res.ResponseMessage = "Username already taken"
		return res
	}

	user := model.User{
		Name:           req.Name,
		UserName:       req.UserName,
		Password:       req.Password,
		OrganizationID: req.OrganizationID,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		res.ResponseCode = "500"
		res.ResponseMessage = "Error while creating user"
		return res
	}

	res.ResponseCode = "201"
	res.ResponseMessage = "Success"
	return res
}
