package configFindService

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/util/path"
)

var ErrConfigNotFound = eris.New("aspa.yml または aspa.yaml が見つかりませんでした")

type ConfigFindService struct {
	fileRepository FileRepository
}

type FileRepository interface {
	Getwd() (string, error)
}

func NewConfigFindService(fileRepository FileRepository) *ConfigFindService {
	return &ConfigFindService{
		fileRepository: fileRepository,
	}
}

// FindConfig walks up from the working directory looking for aspa.yml or aspa.yaml.
func (s *ConfigFindService) FindConfig() (string, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return "", err
	}

	currentDir, err = path.AfterGetAbsPath(currentDir)
	if err != nil {
		return "", err
	}

	for {
		ymlPath := filepath.Join(currentDir, "aspa.yml")
		yamlPath := filepath.Join(currentDir, "aspa.yaml")

		if exists(ymlPath) {
			return ymlPath, nil
		}
		if exists(yamlPath) {
			return yamlPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrConfigNotFound
}

func (s *ConfigFindService) GetProjectRoot(configPath string) string {
	return filepath.Dir(configPath)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
