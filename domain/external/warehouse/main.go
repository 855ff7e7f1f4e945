//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package warehouse

import (
	"context"

	"github.com/t-kuni/aspa/domain/repository/config"
	"go.uber.org/zap"
)

// Client はデータウェアハウスへの問い合わせを抽象化するインターフェースです。
type Client interface {
	// Query はクエリを1件実行し、列名と行を返します。
	// argsはプレースホルダ(?)にバインドされ、クエリ文字列へ埋め込まれることはありません。
	// 接続はクエリごとに開き、結果を読み終えたら閉じます。
	Query(ctx context.Context, query string, args ...any) (Table, error)
}

// ClientFactory は設定からClientを生成します。
// loggerにはクエリの実行ログが出力されます。
type ClientFactory interface {
	NewClient(cfg config.Warehouse, logger *zap.Logger) (Client, error)
}

// Table はクエリ結果です。Rowsの各要素はColumnsと同じ並びです。
type Table struct {
	Columns []string
	Rows    [][]any
}

// IsEmpty は行が1件もない場合にtrueを返します。
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}
