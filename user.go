package main

// ConnectionUser はConnectionインターフェースを通してのみ接続を利用するクラスです。
// 接続は作成時に借り受けるだけで、クローズ以外のライフサイクル管理は行いません。
type ConnectionUser struct {
	conn Connection
}

// NewConnectionUser はconnを利用するConnectionUserを作成します。
func NewConnectionUser(conn Connection) *ConnectionUser {
	return &ConnectionUser{conn: conn}
}

// OpenConnection は接続を開きます。
func (u *ConnectionUser) OpenConnection() {
	u.conn.Open()
}

// UseConnection はクエリを実行し、接続の結果をそのまま返します。
func (u *ConnectionUser) UseConnection(query string) bool {
	return u.conn.ExecQuery(query)
}

// CloseConnection は接続を閉じます。
func (u *ConnectionUser) CloseConnection() {
	u.conn.Close()
}
