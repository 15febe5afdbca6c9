package main

import (
	"database/sql"
	"fmt"
	"runtime"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// dbFixture はテストごとに作成される接続と、それを利用するクラスの組です。
type dbFixture struct {
	conn *DBConnection
	user *ConnectionUser
}

// setupDBFixture は新しいDBConnectionとConnectionUserを作成し、テスト終了時に破棄します
func setupDBFixture(t *testing.T) *dbFixture {
	t.Helper()
	f := &dbFixture{conn: NewDBConnection(nil)}
	f.user = NewConnectionUser(f.conn)

	// テスト間で状態を共有しないよう、終了時に参照を破棄
	t.Cleanup(func() {
		f.user = nil
		f.conn = nil
	})
	return f
}

// setupMockDB はsqlmockのDBをセットアップし、テスト用のDBとmockオブジェクトを返します
// monitorPingsがtrueの場合、Pingにも期待設定が必要になります
func setupMockDB(t *testing.T, monitorPings bool) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	// クエリは正規表現ではなく完全一致で比較する
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(monitorPings),
	)
	if err != nil {
		t.Fatalf("sqlmockの初期化エラー: %v", err)
	}
	return db, mock
}

// verifyExpectations はすべての期待された操作が実行されたかを検証します
func verifyExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("期待された操作が実行されませんでした: %v", err)
	}
}

// recordingT はモックが報告した失敗を記録するmock.TestingTの実装です。
// FailNowは*testing.Tと同様に呼び出し元のゴルーチンを終了させます。
type recordingT struct {
	failed   bool
	messages []string
	cleanups []func()
}

// Cleanup はテスト終了時に実行する関数を登録します
func (r *recordingT) Cleanup(f func()) {
	r.cleanups = append(r.cleanups, f)
}

// finish は*testing.Tと同様に、登録された関数を逆順に実行します
func (r *recordingT) finish() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
	r.cleanups = nil
}

func (r *recordingT) Logf(format string, args ...interface{}) {}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.failed = true
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
	runtime.Goexit()
}

// runRecorded はfを別ゴルーチンで実行し、FailNowで中断された場合も完了を待ちます
func runRecorded(f func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	<-done
}
