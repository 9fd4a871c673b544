package logic

import (
	"context"
	"errors"
	"fmt"

	"SmartMedia/config"
	"SmartMedia/util"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
	"go.uber.org/zap"
)

// ConfigPath 生成配置文件路径，每次请求重新读取
var ConfigPath = "volc_config.txt"

// ErrNotEnoughImages 融合模式至少需要两张参考图
var ErrNotEnoughImages = errors.New("at least two images required")

// buildGenerateRequest 根据提示词、参考图和配置组装生成请求
// 无参考图为文生图，单图（URL或base64）为图生图，两张以上为多图融合
func buildGenerateRequest(cfg *config.Config, prompt string, images []string) model.GenerateImagesRequest {
	req := model.GenerateImagesRequest{
		Model:          cfg.GetString("ARK_MODEL", "doubao-seedream-4-0-250828"),
		Prompt:         prompt,
		Size:           volcengine.String(cfg.GetString("ARK_SIZE", "2K")),
		GuidanceScale:  volcengine.Float64(cfg.GetFloat64("ARK_GUIDANCE", 2.5)),
		Watermark:      volcengine.Bool(cfg.GetBool("ARK_WATERMARK", true)),
		ResponseFormat: volcengine.String(model.GenerateImagesResponseFormatURL),
	}
	if seed := cfg.GetInt64("ARK_SEED", -1); seed >= 0 {
		req.Seed = volcengine.Int64(seed)
	}
	switch {
	case len(images) == 0:
		// 文生图
	case len(images) == 1:
		req.Image = images[0]
	default:
		// 多图融合时关闭组图生成，只要一张结果
		req.Image = images
		var sequentialImageGeneration model.SequentialImageGeneration = "disabled"
		req.SequentialImageGeneration = &sequentialImageGeneration
	}
	return req
}

// newArkClient 根据配置创建Ark客户端，ARK_BASE_URL 可覆盖默认接入点
func newArkClient(cfg *config.Config) *arkruntime.Client {
	apiKey := cfg.GetString("ARK_API_KEY", "")
	if baseURL := cfg.GetString("ARK_BASE_URL", ""); baseURL != "" {
		return arkruntime.NewClientWithApiKey(apiKey, arkruntime.WithBaseUrl(baseURL))
	}
	return arkruntime.NewClientWithApiKey(apiKey)
}

// generate 调用生成接口并把结果图下载到本地，返回本地可访问URL
func generate(prompt string, images []string) (string, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return "", fmt.Errorf("读取配置失败: %v", err)
	}
	client := newArkClient(cfg)
	generateReq := buildGenerateRequest(cfg, prompt, images)

	resp, err := client.GenerateImages(context.Background(), generateReq)
	if err != nil {
		return "", fmt.Errorf("call GenerateImages error: %v", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("API returned error: %s - %s", resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Data) == 0 || resp.Data[0].Url == nil {
		return "", errors.New("生成结果为空")
	}

	// 结果图挂在对方的临时URL上，下载一份到本地再返回
	remoteURL := *resp.Data[0].Url
	localURL, err := util.DownloadImage(remoteURL)
	if err != nil {
		return "", err
	}
	zap.L().Info("图片生成成功",
		zap.String("prompt", prompt),
		zap.String("url", localURL))
	return localURL, nil
}

// Generate 文生图/图生图，image 允许为空
func Generate(prompt, image string) (string, error) {
	var images []string
	if image != "" {
		images = append(images, image)
	}
	return generate(prompt, images)
}

// GenerateMulti 多图融合，至少需要两张base64参考图
func GenerateMulti(prompt string, images []string) (string, error) {
	if len(images) < 2 {
		return "", ErrNotEnoughImages
	}
	return generate(prompt, images)
}
