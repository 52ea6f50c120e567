/*
 * @Description: 统一配置管理 (ini 文件 + 环境变量覆盖)
 * @Author: 墨见寻
 * @Date: 2026-03-02 09:55:31
 * @LastEditTime: 2026-05-08 14:27:50
 * @LastEditors: 墨见寻
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug, KeyJWTSecret,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
}

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"
	KeyJWTSecret   = "System.JWTSecret"
	KeyDBType      = "Database.Type"
	KeyDBHost      = "Database.Host"
	KeyDBPort      = "Database.Port"
	KeyDBUser      = "Database.User"
	KeyDBPassword  = "Database.Password"
	KeyDBName      = "Database.Name"
	KeyDBDebug     = "Database.Debug"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 手动加载配置：先读取 data/conf.ini 作为默认值，再用环境变量覆盖。
// 配置文件不存在时自动创建默认文件。
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := filepath.Join("data", "conf.ini")

	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if werr := createDefaultConfigFile(filePath); werr != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", werr)
			} else if iniCfg, err = ini.Load(filePath); err != nil {
				log.Printf("警告: 重新加载配置文件失败: %v", err)
			}
		} else {
			return nil, fmt.Errorf("解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
	}

	// 环境变量覆盖，例如 NEWSHUB_DATABASE_HOST 覆盖 Database.Host
	envReplacer := strings.NewReplacer(".", "_")
	const envPrefix = "NEWSHUB"
	for _, key := range allKeys {
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
		}
	}

	log.Println("配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// createDefaultConfigFile 写出一份带注释的默认配置
func createDefaultConfigFile(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}
	content := `[System]
Port = 8080
Debug = false
; JWT 签名密钥，生产环境务必修改或通过 NEWSHUB_SYSTEM_JWTSECRET 注入
JWTSecret = change-me-in-production

[Database]
; 支持 mysql / postgres / sqlite，默认 sqlite
Type = sqlite
Host =
Port =
User =
Password =
Name =
Debug = false
`
	return os.WriteFile(filePath, []byte(content), 0o644)
}
