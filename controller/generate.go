package controller

import (
	"errors"
	"net/http"

	"SmartMedia/logic"
	"SmartMedia/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateHandler 文生图/图生图
// 请求体 {prompt, image?}，image 可以是URL或base64参考图
func GenerateHandler(c *gin.Context) {
	var fo *models.GenerateForm
	if err := c.ShouldBindJSON(&fo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	url, err := logic.Generate(fo.Prompt, fo.Image)
	if err != nil {
		zap.L().Error("logic.Generate failed", zap.String("prompt", fo.Prompt), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GenerateMultiHandler 多图融合生成
// 请求体 {prompt, images}，参考图不足两张直接400，不会调用生成接口
func GenerateMultiHandler(c *gin.Context) {
	var fo *models.GenerateMultiForm
	if err := c.ShouldBindJSON(&fo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	url, err := logic.GenerateMulti(fo.Prompt, fo.Images)
	if err != nil {
		if errors.Is(err, logic.ErrNotEnoughImages) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("logic.GenerateMulti failed", zap.String("prompt", fo.Prompt), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
