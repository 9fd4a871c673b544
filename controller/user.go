package controller

import (
	"fmt"

	"SmartMedia/dao/sqlite"
	"SmartMedia/dao/store"
	"SmartMedia/logic"
	"SmartMedia/middleware"
	"SmartMedia/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SignUpHandler 注册业务
// @Summary 用户注册
// @Description 创建新用户账号，返回标准响应体
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterForm true "注册表单（username 和 password）"
// @Success 200 {object} map[string]interface{} "注册成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误或用户已存在"
// @Failure 500 {object} map[string]interface{} "服务器错误"
// @Router /register [post]
func SignUpHandler(c *gin.Context) {
	// 1.获取请求参数并校验
	var fo *models.RegisterForm
	if err := c.ShouldBindJSON(&fo); err != nil {
		zap.L().Error("SignUp with invalid param", zap.Error(err))
		// 判断err是不是 validator.ValidationErrors类型的errors
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			ResponseError(c, CodeInvalidParams)
			return
		}
		// validator.ValidationErrors类型错误则进行翻译
		ResponseErrorWithMsg(c, CodeInvalidParams, removeTopStruct(errs.Translate(trans)))
		return
	}
	// 2.业务处理 —— 注册用户
	if err := logic.SignUp(fo); err != nil {
		zap.L().Error("logic.SignUp failed", zap.Error(err))
		if err.Error() == sqlite.ErrorUserExit {
			ResponseError(c, CodeUserExist)
			return
		}
		ResponseError(c, CodeServerBusy)
		return
	}
	// 3.返回响应
	ResponseSuccess(c, nil)
}

// LoginHandler 登录业务
// @Summary 用户登录
// @Description 使用用户名和密码登录，登录成功后通过cookie下发会话
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginForm true "登录表单（username 和 password）"
// @Success 200 {object} map[string]interface{} "登录成功，返回用户ID和用户名"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 401 {object} map[string]interface{} "用户不存在或密码错误"
// @Failure 500 {object} map[string]interface{} "服务器错误"
// @Router /login [post]
func LoginHandler(c *gin.Context) {
	// 1.获取请求参数及参数校验
	var u *models.LoginForm
	if err := c.ShouldBindJSON(&u); err != nil {
		zap.L().Error("Login with invalid param", zap.Error(err))
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			ResponseError(c, CodeInvalidParams)
			return
		}
		ResponseErrorWithMsg(c, CodeInvalidParams, removeTopStruct(errs.Translate(trans)))
		return
	}

	// 2.业务逻辑处理——登录
	user, token, err := logic.Login(u)
	if err != nil {
		zap.L().Error("logic.Login failed", zap.String("username", u.UserName), zap.Error(err))
		if err.Error() == sqlite.ErrorUserNotExit {
			ResponseError(c, CodeUserNotExist)
			return
		}
		ResponseError(c, CodeInvalidPassword)
		return
	}

	// 3.下发会话cookie并返回响应
	c.SetCookie(middleware.SessionCookie, token, int(store.SessionTTL.Seconds()), "/", "", false, true)
	ResponseSuccess(c, gin.H{
		"user_id":   fmt.Sprintf("%d", user.ID), // js识别的最大值：id值大于1<<53-1  int64: i<<63-1
		"user_name": user.Username,
	})
}

// LogoutHandler 登出业务，清掉会话和cookie
// @Summary 用户登出
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{} "登出成功"
// @Router /logout [get]
func LogoutHandler(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil && token != "" {
		if err := logic.Logout(token); err != nil {
			zap.L().Warn("logic.Logout failed", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	ResponseSuccess(c, nil)
}
