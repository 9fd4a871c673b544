package controller

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"SmartMedia/dao/sqlite"
	"SmartMedia/middleware"
	"SmartMedia/models"
	"SmartMedia/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SaveHandler 保存一条生成记录，需登录
func SaveHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
		return
	}
	var fo *models.SaveForm
	if err := c.ShouldBindJSON(&fo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	img := &models.Image{
		UserID: userID,
		Prompt: fo.Prompt,
		URL:    fo.URL,
		Type:   fo.Type,
	}
	if img.Type == "" {
		img.Type = models.TypeText2Img
	}
	// base64参考图落盘成本地路径再入库，落盘失败不影响保存
	if fo.SourceImage != "" {
		if strings.HasPrefix(fo.SourceImage, "data:") {
			if local, saved := util.SaveBase64Image(fo.SourceImage); saved {
				img.SourceImage = local
			}
		} else {
			img.SourceImage = fo.SourceImage
		}
	}

	if err := sqlite.InsertImage(img); err != nil {
		zap.L().Error("sqlite.InsertImage failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "保存成功"})
}

// HistoryHandler 查询当前用户的生成历史，最新的在前
// 支持 ?q= 按提示词过滤；未登录返回空列表
func HistoryHandler(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Image{})
		return
	}
	images, err := sqlite.GetImagesByUser(userID, c.Query("q"))
	if err != nil {
		zap.L().Error("sqlite.GetImagesByUser failed", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// DeleteHandler 按ID删除记录
// 行删除成功后尽力清理本地图片文件，清理失败只记日志不影响结果
func DeleteHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	// 先查出url，删完行之后才知道要不要清理文件；查不到也照常删行
	img, _ := sqlite.GetImageByID(id)

	if err := sqlite.DeleteImage(id); err != nil {
		zap.L().Error("sqlite.DeleteImage failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除失败"})
		return
	}

	if img != nil {
		if path, local := util.LocalImagePath(img.URL); local {
			if err := os.Remove(path); err != nil {
				zap.L().Warn("删除本地图片失败", zap.String("path", path), zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
