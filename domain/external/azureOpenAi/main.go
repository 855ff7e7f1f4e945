//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package azureOpenAi

import "github.com/t-kuni/aspa/domain/repository/config"

// Client はAzure OpenAI APIとの通信を抽象化するインターフェースです。
type Client interface {
	// SendMessage はメッセージを送信し、1件の応答を返します。
	// デプロイメント名・APIバージョンは生成時の設定に従います。
	// ステータスコード200以外が返却された場合、レスポンスボディ全体をエラーメッセージに含めます。
	// タイムアウトとリトライは行いません。
	SendMessage(messages []Message, maxTokens int) (GenerationResult, error)
}

// ClientFactory は設定からClientを生成します。
type ClientFactory interface {
	NewClient(cfg config.LLM) (Client, error)
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message はAzure OpenAI APIに送信するメッセージの構造を表します。
type Message struct {
	Role    string
	Content string
}

// NewMessage は新しいMessageインスタンスを作成します。
func NewMessage(role, content string) Message {
	return Message{
		Role:    role,
		Content: content,
	}
}

// GenerationResult は生成結果を表す構造体です。
type GenerationResult struct {
	Content           string
	TerminationReason string
}
