package sqlite

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var Db *sqlx.DB

// Init 打开sqlite数据库并初始化表结构
func Init(path string) (err error) {
	Db, err = sqlx.Connect("sqlite", path)
	if err != nil {
		return
	}
	// sqlite 单写者，限制连接数避免并发写冲突
	Db.SetMaxOpenConns(1)
	return createTables()
}

func createTables() error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE,
			password TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS images (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			prompt TEXT,
			url TEXT,
			type TEXT,
			source_image TEXT,
			created_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, schema := range schemas {
		if _, err := Db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}

// Close 关闭数据库连接
func Close() {
	_ = Db.Close()
}
