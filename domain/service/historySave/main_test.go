package historySave

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/aspa/domain/system/ksuid"
	"github.com/t-kuni/aspa/domain/system/timer"
	fileRepo "github.com/t-kuni/aspa/infrastructure/repository/file"
	"github.com/t-kuni/aspa/testUtil"
	"go.uber.org/mock/gomock"
)

func TestHistorySaveService_SaveTroubleshooting(t *testing.T) {
	t.Run("プロンプトと応答が履歴ディレクトリに保存されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		mockTimer := timer.NewMockITimer(mockCtrl)
		mockTimer.EXPECT().Now().Return(testUtil.NewTime("2024-01-02T15:04:05Z"))
		mockKsuid := ksuid.NewMockIKsuid(mockCtrl)
		mockKsuid.EXPECT().New().Return("test-ksuid")

		testee := NewHistorySaveService(fileRepo.NewFileRepository(), mockTimer, mockKsuid)
		dir, err := testee.SaveTroubleshooting(space.Dir, "PROMPT", "ANSWER")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(space.Dir, ".aspa", "history", "troubleshoot", "test-ksuid"), dir)
		space.AssertExistPath(filepath.Join(dir, "2024-01-02T15:04:05"))
		space.AssertFile(filepath.Join(dir, "prompt.md"), func(actual []byte) {
			assert.Equal(t, "PROMPT", string(actual))
		})
		space.AssertFile(filepath.Join(dir, "answer.md"), func(actual []byte) {
			assert.Equal(t, "ANSWER", string(actual))
		})
	})
}
