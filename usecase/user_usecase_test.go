package usecase_test

import (
	"context"
	"errors"
	"testing"

	"granitereply/domain/model"
	"granitereply/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetById(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	args := m.Called(ctx, userName)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByUserName", mock.Anything, "maria").
		Return(model.User{ID: 1, UserName: "maria", Password: "hashed", OrganizationID: "org-1"}, nil).Once()

	userUsecase := usecase.NewUserUsecase(userRepo, "secret")
	res := userUsecase.Login(context.Background(), model.ReqLogin{UserName: "maria", Password: "hashed"})

	assert.Equal(t, "200", res.ResponseCode)
	data := res.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "maria", data["user_name"])
	assert.Equal(t, "org-1", data["organization_id"])
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByUserName", mock.Anything, "maria").
		Return(model.User{ID: 1, UserName: "maria", Password: "hashed"}, nil).Once()

	userUsecase := usecase.NewUserUsecase(userRepo, "secret")
	res := userUsecase.Login(context.Background(), model.ReqLogin{UserName: "maria", Password: "wrong"})

	assert.Equal(t, "401", res.ResponseCode)
	assert.Equal(t, "Invalid username or password", res.ResponseMessage)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByUserName", mock.Anything, "ghost").
		Return(model.User{}, errors.New("sql: no rows in result set")).Once()

	userUsecase := usecase.NewUserUsecase(userRepo, "secret")
	res := userUsecase.Login(context.Background(), model.ReqLogin{UserName: "ghost", Password: "x"})

	assert.Equal(t, "401", res.ResponseCode)
}

func TestRegister_UsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByUserName", mock.Anything, "maria").
		Return(model.User{ID: 1, UserName: "maria"}, nil).Once()

	userUsecase := usecase.NewUserUsecase(userRepo, "secret")
	res := userUsecase.Register(context.Background(), model.ReqRegister{UserName: "maria", Password: "x"})

	assert.Equal(t, "409", res.ResponseCode)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByUserName", mock.Anything, "newuser").
		Return(model.User{}, errors.New("sql: no rows in result set")).Once()
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user model.User) bool {
		return user.UserName == "newuser" && user.OrganizationID == "org-9"
	})).Return(nil).Once()

	userUsecase := usecase.NewUserUsecase(userRepo, "secret")
	res := userUsecase.Register(context.Background(), model.ReqRegister{
		Name:           "New User",
		UserName:       "newuser",
		Password:       "hashed",
		OrganizationID: "org-9",
	})

	assert.Equal(t, "201", res.ResponseCode)
	userRepo.AssertExpectations(t)
}
