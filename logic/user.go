package logic

import (
	"errors"

	"SmartMedia/dao/sqlite"
	"SmartMedia/dao/store"
	"SmartMedia/models"

	"github.com/google/uuid"
)

// SignUp 注册业务
func SignUp(fo *models.RegisterForm) error {
	user := &models.User{
		Username: fo.UserName,
		Password: fo.Password,
	}
	return sqlite.InsertUser(user)
}

// Login 登录业务，校验通过后签发会话token
func Login(fo *models.LoginForm) (*models.User, string, error) {
	user, err := sqlite.GetUserByName(fo.UserName)
	if err != nil {
		return nil, "", err
	}
	if user.Password != fo.Password {
		return nil, "", errors.New(sqlite.ErrorPasswordWrong)
	}
	token := uuid.New().String()
	if err := store.SetSession(token, user.ID); err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout 登出业务，删掉redis里的会话
func Logout(token string) error {
	return store.DelSession(token)
}
