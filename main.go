package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"
)

// userQuery はデモで実行するクエリです。
const userQuery = "SELECT username FROM users;"

func main() {
	// ロガーを初期化
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗しました: %v", err)
	}
	defer logger.Sync()

	// 接続とそれを利用するクラスを作成
	conn := NewDBConnection(logger)
	user := NewConnectionUser(conn)

	user.OpenConnection()
	res := user.UseConnection(userQuery)
	user.CloseConnection()

	// 実行結果の表示
	if res {
		fmt.Printf("クエリが成功しました: %s\n", userQuery)
	} else {
		fmt.Printf("クエリが失敗しました: %s\n", userQuery)
	}
	fmt.Println("接続を閉じました。")
}
