package sqlite

import (
	"database/sql"
	"errors"

	"SmartMedia/models"
)

const (
	ErrorUserExit      = "用户已存在"
	ErrorUserNotExit   = "用户不存在"
	ErrorPasswordWrong = "用户名或密码错误"
)

// InsertUser 新增用户，用户名唯一
func InsertUser(user *models.User) error {
	var count int
	if err := Db.Get(&count, "SELECT COUNT(id) FROM users WHERE username = ?", user.Username); err != nil {
		return err
	}
	if count > 0 {
		return errors.New(ErrorUserExit)
	}
	result, err := Db.Exec("INSERT INTO users(username, password) VALUES(?, ?)", user.Username, user.Password)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint64(id)
	return nil
}

// GetUserByName 根据用户名查询用户
func GetUserByName(username string) (*models.User, error) {
	user := &models.User{}
	sqlStr := "SELECT id, username, password FROM users WHERE username = ?"
	err := Db.Get(user, sqlStr, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(ErrorUserNotExit)
		}
		return nil, err
	}
	return user, nil
}
