/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-07 11:02:33
 * @LastEditTime: 2026-05-23 15:10:44
 * @LastEditors: 墨见寻
 */
package main

import (
	"log"

	"github.com/mojianxun/newshub/cmd/server"
)

// @title           NewsHub API
// @version         1.0
// @description     新闻分享平台接口文档

// @contact.name   墨见寻
// @contact.url    https://github.com/mojianxun/newshub

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 请在值中输入 "Bearer {token}"
func main() {
	app, cleanup, err := server.NewApp()
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		log.Fatalf("应用运行失败: %v", err)
	}
}
