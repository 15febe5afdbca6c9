package main

import (
	"database/sql"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DBConnection は開閉状態だけを保持する最小限の接続実装です。
// 実際のデータベースには接続せず、クエリは常に成功します。
type DBConnection struct {
	isOpen bool
	logger *zap.Logger
}

// NewDBConnection は開いた状態のDBConnectionを作成します。loggerがnilの場合はログを出力しません。
func NewDBConnection(logger *zap.Logger) *DBConnection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DBConnection{
		isOpen: true,
		logger: logger,
	}
}

// Open は閉じている接続に対しては何もせずに戻ります。
// 開いている接続はそのまま開いた状態を保つため、Openで状態が変わることはありません。
func (c *DBConnection) Open() {
	c.logger.Debug(`execute method in a dummy connection`, zap.String("method", "Open"), zap.Bool("isOpen", c.isOpen))
	if !c.isOpen {
		return
	}
	c.isOpen = true
}

// Close は状態に関わらず接続を閉じた状態にします。
func (c *DBConnection) Close() {
	c.logger.Debug(`execute method in a dummy connection`, zap.String("method", "Close"), zap.Bool("isOpen", c.isOpen))
	c.isOpen = false
}

// ExecQuery はクエリの内容を無視して常にtrueを返します。
func (c *DBConnection) ExecQuery(query string) bool {
	c.logger.Debug(`execute method in a dummy connection`, zap.String("method", "ExecQuery"), zap.String("query", query))
	return true // クエリは成功
}

// IsOpen は接続が開いているかを返します。
func (c *DBConnection) IsOpen() bool {
	return c.isOpen
}

// errNilDB はハンドルなしでSQLConnectionが作成された場合のエラーです。
var errNilDB = errors.New("database handle is nil")

// SQLConnection は呼び出し側が用意した*sql.DBをConnectionインターフェースに適応させるアダプタです。
// ハンドルの生成（DSNやドライバの選択）は行いません。
type SQLConnection struct {
	db     *sql.DB
	logger *zap.Logger
	ready  bool
}

// NewSQLConnection はdbをラップしたSQLConnectionを作成します。loggerがnilの場合はログを出力しません。
func NewSQLConnection(db *sql.DB, logger *zap.Logger) *SQLConnection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLConnection{
		db:     db,
		logger: logger,
	}
}

// Open はPingで接続を確認し、成功した場合にクエリを受け付ける状態にします。
func (c *SQLConnection) Open() {
	if c.ready {
		return
	}
	if c.db == nil {
		c.logger.Error("接続の確認に失敗しました", zap.Error(errNilDB))
		return
	}
	if err := c.db.Ping(); err != nil {
		c.logger.Error("接続の確認に失敗しました", zap.Error(errors.Wrap(err, "failed to ping database")))
		return
	}
	c.ready = true
}

// Close はハンドルを閉じます。エラーはログに出力するだけで呼び出し側には返しません。
func (c *SQLConnection) Close() {
	c.ready = false
	if c.db == nil {
		return
	}
	if err := c.db.Close(); err != nil {
		c.logger.Error("接続のクローズに失敗しました", zap.Error(errors.Wrap(err, "failed to close database")))
	}
}

// ExecQuery はクエリを実行し、成功した場合にtrueを返します。
// Openされていない場合や実行エラーの場合はfalseを返します。
func (c *SQLConnection) ExecQuery(query string) bool {
	if !c.ready {
		c.logger.Warn("接続が開かれていません", zap.String("query", query))
		return false
	}
	if _, err := c.db.Exec(query); err != nil {
		c.logger.Error("クエリの実行に失敗しました", zap.Error(errors.Wrapf(err, "failed to exec %q", query)))
		return false
	}
	return true
}
