package infra

import (
	"github.com/joho/godotenv"
)

// Initialize .envを読み込む。ファイルがなくても環境変数だけで動くのでエラーは返すだけにする
func Initialize() error {
	return godotenv.Load()
}
