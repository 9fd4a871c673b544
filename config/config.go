package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 扁平 KEY=VALUE 配置文件的内容
// 生成接口每次调用都重新加载，改完配置文件下一个请求即生效
type Config struct {
	values map[string]string
}

// Load 读取并解析配置文件
// 文件不存在或某一行缺少分隔符时返回错误
func Load(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}
	return &Config{values: values}, nil
}

// GetString 取字符串配置，缺失或为空时返回默认值
func (c *Config) GetString(key, def string) string {
	if v, ok := c.values[key]; ok && v != "" {
		return v
	}
	return def
}

// GetFloat64 取浮点配置，缺失或解析失败时返回默认值
func (c *Config) GetFloat64(key string, def float64) float64 {
	v, ok := c.values[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// GetInt64 取整数配置，缺失或解析失败时返回默认值
func (c *Config) GetInt64(key string, def int64) int64 {
	v, ok := c.values[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// GetBool 取布尔配置，true/false 不区分大小写，其余值返回默认值
func (c *Config) GetBool(key string, def bool) bool {
	v, ok := c.values[key]
	if !ok {
		return def
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true
	case strings.EqualFold(v, "false"):
		return false
	}
	return def
}
