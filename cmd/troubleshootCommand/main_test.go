package troubleshootCommand_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/aspa/cmd/troubleshootCommand"
	domainAzureOpenAi "github.com/t-kuni/aspa/domain/external/azureOpenAi"
	"github.com/t-kuni/aspa/domain/external/warehouse"
	"github.com/t-kuni/aspa/domain/service/historySave"
	"github.com/t-kuni/aspa/domain/system/ksuid"
	"github.com/t-kuni/aspa/domain/system/timer"
	fileRepo "github.com/t-kuni/aspa/infrastructure/repository/file"
	"github.com/t-kuni/aspa/testUtil"
	"github.com/t-kuni/aspa/testUtil/fakeDesk"
	"go.uber.org/mock/gomock"
)

const completion = `Troubleshooting steps:
- Check that the power cord is plugged in

- The heater does not heat up
- Reset the thermal breaker`

func TestTroubleshootCommand(t *testing.T) {
	type Mocks struct {
		fakeDesk.Mocks
		Timer          *timer.MockITimer
		KsuidGenerator *ksuid.MockIKsuid
	}

	callCommand := func(
		mockCtrl *gomock.Controller,
		dir string,
		args []string,
		stdin string,
		customizeMocks func(mocks Mocks),
	) (string, error) {
		boot, deskMocks := fakeDesk.NewBootstrap(mockCtrl, dir)
		mocks := Mocks{
			Mocks:          deskMocks,
			Timer:          timer.NewMockITimer(mockCtrl),
			KsuidGenerator: ksuid.NewMockIKsuid(mockCtrl),
		}
		customizeMocks(mocks)

		historySaveSvc := historySave.NewHistorySaveService(fileRepo.NewFileRepository(), mocks.Timer, mocks.KsuidGenerator)
		testee := troubleshootCommand.NewTroubleshootCommand(boot, historySaveSvc)

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(testee.CobraCommand)

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetIn(strings.NewReader(stdin))
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	tables := fakeDesk.Tables{
		Customers: map[string]warehouse.Table{"090-1234-5678": fakeDesk.CustomerTable()},
		Manuals:   map[string]warehouse.Table{"P1": fakeDesk.ManualTable("HEATER MANUAL")},
	}

	t.Run("マニュアルから抽出した手順が表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, space.Dir, []string{"troubleshoot", "090-1234-5678", "--product", "Heater", "--issue", "does not heat up"}, "", func(mocks Mocks) {
			mocks.Serve(tables)
			mocks.LLMClient.EXPECT().SendMessage(gomock.Any(), 1000).
				DoAndReturn(func(messages []domainAzureOpenAi.Message, maxTokens int) (domainAzureOpenAi.GenerationResult, error) {
					require.Len(t, messages, 2)
					assert.Equal(t, domainAzureOpenAi.RoleSystem, messages[0].Role)
					assert.Contains(t, messages[0].Content, "does not heat up")
					assert.Equal(t, "Use this data: HEATER MANUAL", messages[1].Content)
					return domainAzureOpenAi.GenerationResult{Content: completion}, nil
				})
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Troubleshooting Steps for 'does not heat up' issue:")
		assert.Contains(t, out, "Check that the power cord is plugged in")
		assert.Contains(t, out, "Reset the thermal breaker")
		assert.NotContains(t, out, "The heater does not heat up")
		space.AssertNotExistPath(".aspa")
	})

	t.Run("標準入力から問題の説明を読み込めること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, space.Dir, []string{"troubleshoot", "090-1234-5678", "--product", "P1", "-i"}, "does not heat up\n", func(mocks Mocks) {
			mocks.Serve(tables)
			mocks.LLMClient.EXPECT().SendMessage(gomock.Any(), 1000).
				Return(domainAzureOpenAi.GenerationResult{Content: completion}, nil)
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Troubleshooting Steps for 'does not heat up' issue:")
	})

	t.Run("マニュアルがない場合はLLMを呼ばずにメッセージが表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, space.Dir, []string{"troubleshoot", "090-1234-5678", "--product", "Fan", "--issue", "noise"}, "", func(mocks Mocks) {
			mocks.Serve(tables)
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Manual not found for this product.")
	})

	t.Run("history.enabledが有効な場合はプロンプトと応答が保存されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("aspa.yml", []byte("history:\n    enabled: true\n"))

		_, err := callCommand(mockCtrl, space.Dir, []string{"troubleshoot", "090-1234-5678", "--product", "Heater", "--issue", "does not heat up"}, "", func(mocks Mocks) {
			mocks.Serve(tables)
			mocks.LLMClient.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
				Return(domainAzureOpenAi.GenerationResult{Content: completion}, nil)
			mocks.Timer.EXPECT().Now().Return(testUtil.NewTime("2024-06-01T10:00:00Z"))
			mocks.KsuidGenerator.EXPECT().New().Return("test-ksuid")
		})

		require.NoError(t, err)
		dir := filepath.Join(".aspa", "history", "troubleshoot", "test-ksuid")
		space.AssertExistPath(filepath.Join(dir, "2024-06-01T10:00:00"))
		space.AssertFile(filepath.Join(dir, "answer.md"), func(actual []byte) {
			assert.Equal(t, completion, string(actual))
		})
		space.AssertFile(filepath.Join(dir, "prompt.md"), func(actual []byte) {
			assert.Contains(t, string(actual), "does not heat up")
		})
	})

	t.Run("購入していない製品はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		_, err := callCommand(mockCtrl, space.Dir, []string{"troubleshoot", "090-1234-5678", "--product", "Toaster", "--issue", "broken"}, "", func(mocks Mocks) {
			mocks.Serve(tables)
		})

		assert.Error(t, err)
	})

	t.Run("問題の説明の入力元を複数指定するとエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		_, err := callCommand(mockCtrl, space.Dir, []string{"troubleshoot", "090-1234-5678", "--product", "Heater", "--issue", "x", "-i"}, "y", func(mocks Mocks) {})

		assert.Error(t, err)
	})
}
