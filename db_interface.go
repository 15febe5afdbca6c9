package main

// Connection はデータベース接続として振る舞うために必要な操作を定義するインターフェースです。
// ConnectionUser はこのインターフェースにのみ依存するため、テストではモックに差し替えられます。
type Connection interface {
	// 接続管理メソッド
	Open()
	Close()

	// クエリを実行し、成功した場合はtrue、失敗した場合はfalseを返す
	ExecQuery(query string) bool
}

// 実装がインターフェースを満たしていることをコンパイル時に確認
var (
	_ Connection = (*DBConnection)(nil)
	_ Connection = (*SQLConnection)(nil)
)
