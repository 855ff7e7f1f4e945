package historySave

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/repository/file"
	"github.com/t-kuni/aspa/domain/system/ksuid"
	"github.com/t-kuni/aspa/domain/system/timer"
)

type HistorySaveService struct {
	fileRepository file.Repository
	timer          timer.ITimer
	ksuidGenerator ksuid.IKsuid
}

func NewHistorySaveService(fileRepository file.Repository, timer timer.ITimer, ksuidGenerator ksuid.IKsuid) *HistorySaveService {
	return &HistorySaveService{
		fileRepository: fileRepository,
		timer:          timer,
		ksuidGenerator: ksuidGenerator,
	}
}

// SaveTroubleshooting writes the prompt and the raw completion to
// <rootDir>/.aspa/history/troubleshoot/<ksuid>/ and returns that directory.
// An empty rootDir means the working directory.
func (s *HistorySaveService) SaveTroubleshooting(rootDir string, prompt string, completion string) (string, error) {
	if rootDir == "" {
		wd, err := s.fileRepository.Getwd()
		if err != nil {
			return "", eris.Wrap(err, "failed to get working directory")
		}
		rootDir = wd
	}

	historyDir := filepath.Join(rootDir, ".aspa", "history", "troubleshoot", s.ksuidGenerator.New())
	err := s.fileRepository.MkdirAll(historyDir)
	if err != nil {
		return "", eris.Wrap(err, "failed to create history directory")
	}

	timeFile := filepath.Join(historyDir, s.timer.Now().Format("2006-01-02T15:04:05"))
	err = s.fileRepository.Write(timeFile, []byte{})
	if err != nil {
		return "", eris.Wrap(err, "failed to create time file")
	}

	err = s.fileRepository.Write(filepath.Join(historyDir, "prompt.md"), []byte(prompt))
	if err != nil {
		return "", eris.Wrap(err, "failed to write prompt to history")
	}

	err = s.fileRepository.Write(filepath.Join(historyDir, "answer.md"), []byte(completion))
	if err != nil {
		return "", eris.Wrap(err, "failed to write answer to history")
	}

	return historyDir, nil
}
