package main

import (
	"log"

	"SmartMedia/controller"
	"SmartMedia/dao/sqlite"
	"SmartMedia/dao/store"
	"SmartMedia/middleware"
	"SmartMedia/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	lg, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	zap.ReplaceGlobals(lg)
	defer lg.Sync()

	if err := sqlite.Init("database.db"); err != nil {
		log.Fatalf("Failed to init sqlite: %v", err)
	}
	defer sqlite.Close()

	if err := store.Init("localhost:6379"); err != nil {
		log.Fatalf("Failed to init Redis: %v", err)
	}

	// 初始化校验器的中文翻译
	if err := controller.InitTrans("zh"); err != nil {
		log.Fatalf("Failed to init validator trans: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.SessionAuth())

	// 生成和下载的图片都放在本地内容目录，按固定前缀对外提供
	r.Static("/pic", util.ContentDir)

	r.POST("/register", controller.SignUpHandler)
	r.POST("/login", controller.LoginHandler)
	r.GET("/logout", controller.LogoutHandler)

	api := r.Group("/api")
	{
		api.POST("/generate", controller.GenerateHandler)
		api.POST("/generate_multi", controller.GenerateMultiHandler)
		api.POST("/save", middleware.LoginRequired(), controller.SaveHandler)
		api.GET("/history", controller.HistoryHandler)
		api.DELETE("/delete/:id", controller.DeleteHandler)
	}

	r.Run(":5000")
}
