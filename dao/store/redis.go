package store

import (
	"strconv"
	"time"

	"github.com/go-redis/redis"
)

// SessionTTL 会话有效期
const SessionTTL = 24 * time.Hour

const sessionPrefix = "session:"

var Client *redis.Client

func Init(cfg string) (err error) {
	Client = redis.NewClient(&redis.Options{
		Addr: cfg,
	})

	_, err = Client.Ping().Result()
	if err != nil {
		return err
	}
	return nil
}

func GetRedis() *redis.Client {
	return Client
}

// SetSession 写入会话 token -> 用户ID
func SetSession(token string, userID uint64) error {
	key := sessionPrefix + token
	return Client.Set(key, strconv.FormatUint(userID, 10), SessionTTL).Err()
}

// GetSession 根据token查登录用户ID
func GetSession(token string) (uint64, error) {
	val, err := Client.Get(sessionPrefix + token).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(val, 10, 64)
}

// DelSession 删除会话（登出）
func DelSession(token string) error {
	return Client.Del(sessionPrefix + token).Err()
}
