package initCommand

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/aspa/domain/repository/file"
	"github.com/t-kuni/aspa/infrastructure/repository/config"
	"github.com/t-kuni/aspa/testUtil"
	"go.uber.org/mock/gomock"
)

func TestInitCommand(t *testing.T) {
	t.Run("aspa.ymlが作成され、秘密情報が含まれないこと", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		configRepo := config.NewConfigRepository()

		fileRepo := file.NewMockRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(space.Dir, nil).Times(1)
		fileRepo.EXPECT().Exists(gomock.Any()).Return(false)

		initCmd := NewInitCommand(configRepo, fileRepo)

		cmd := &cobra.Command{}
		cmd.AddCommand(initCmd.CobraCommand)
		cmd.SetArgs([]string{"init"})

		err := cmd.Execute()
		assert.NoError(t, err)

		space.AssertFile("aspa.yml", func(actual []byte) {
			expect := `
warehouse:
    driver: snowflake
    database: DEMO
    schema: ASPA
llm:
    endpoint: ""
    api-version: 2023-12-01-preview
    deployment: manufacturing-demo
    max-tokens: 1000
history:
    enabled: false
log:
    level: warn
    development: false
`
			assert.YAMLEq(t, expect, string(actual))
		})
	})

	t.Run("既にaspa.ymlがある場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		fileRepo := file.NewMockRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(space.Dir, nil)
		fileRepo.EXPECT().Exists(gomock.Any()).Return(true)

		cmd := &cobra.Command{}
		cmd.AddCommand(NewInitCommand(config.NewConfigRepository(), fileRepo).CobraCommand)
		cmd.SetArgs([]string{"init"})

		assert.Error(t, cmd.Execute())
	})
}
