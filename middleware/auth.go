package middleware

import (
	"net/http"

	"SmartMedia/dao/store"

	"github.com/gin-gonic/gin"
)

// SessionCookie 会话cookie名
const SessionCookie = "session_id"

// CtxUserIDKey 登录用户ID在请求上下文中的key
const CtxUserIDKey = "user_id"

// SessionAuth 解析会话cookie，把登录用户ID放进请求上下文
// 未登录不拦截，是否要求登录由各接口自行决定
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		userID, err := store.GetSession(token)
		if err != nil {
			// 会话过期或不存在，按未登录处理
			c.Next()
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

// LoginRequired 要求已登录，否则401
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID 取出当前登录用户ID
func CurrentUserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0, false
	}
	userID, ok := v.(uint64)
	return userID, ok
}
