package util

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentDir 本地图片存储目录
var ContentDir = "./public/pic"

// URLPrefix 本地图片对外访问的URL前缀
const URLPrefix = "/pic/"

// newImageName 时间戳+随机后缀，避免并发请求下的文件名冲突
func newImageName() string {
	return fmt.Sprintf("%d_%s.png", time.Now().UnixNano(), uuid.New().String()[:8])
}

func ensureContentDir() error {
	return os.MkdirAll(ContentDir, 0o755)
}

// SaveBase64Image 解码base64图片写入本地目录，返回可访问的相对路径
// 支持 data:*;base64, 前缀；解码或写入失败不致命，返回 ok=false
func SaveBase64Image(data string) (string, bool) {
	if strings.HasPrefix(data, "data:") {
		if idx := strings.Index(data, ";base64,"); idx >= 0 {
			data = data[idx+len(";base64,"):]
		}
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		zap.L().Warn("解码base64图片失败", zap.Error(err))
		return "", false
	}
	if err := ensureContentDir(); err != nil {
		zap.L().Warn("创建图片目录失败", zap.Error(err))
		return "", false
	}
	name := newImageName()
	if err := os.WriteFile(filepath.Join(ContentDir, name), raw, 0o644); err != nil {
		zap.L().Warn("写入图片文件失败", zap.Error(err))
		return "", false
	}
	return URLPrefix + name, true
}

// DownloadImage 下载远程图片到本地目录，返回可访问的相对路径
func DownloadImage(imageURL string) (string, error) {
	if err := ensureContentDir(); err != nil {
		return "", fmt.Errorf("创建图片目录失败: %v", err)
	}

	// 发送HTTP请求
	resp, err := http.Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("下载请求失败: %v", err)
	}
	defer resp.Body.Close()

	// 检查响应状态码
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("下载失败，状态码: %d", resp.StatusCode)
	}

	// 将响应体写入文件
	name := newImageName()
	out, err := os.Create(filepath.Join(ContentDir, name))
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %v", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("写入文件失败: %v", err)
	}
	return URLPrefix + name, nil
}

// LocalImagePath 判断url是否指向本地图片目录，是则返回文件系统路径
// 只有本地图片才允许随记录删除做文件清理
func LocalImagePath(url string) (string, bool) {
	if !strings.HasPrefix(url, URLPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(url, URLPrefix)
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return "", false
	}
	return filepath.Join(ContentDir, name), true
}
