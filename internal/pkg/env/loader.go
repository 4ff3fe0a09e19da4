package env

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

// LoadEnvFile parses a dotenv file.
func LoadEnvFile(path string) (*Map, error) {
	content, err := os.ReadFile(path) // nolint: forbidigo
	if err != nil {
		return nil, errors.Errorf(`cannot read env file "%s": %w`, path, err)
	}

	envs, err := LoadEnvString(string(content))
	if err != nil {
		return nil, errors.Errorf(`cannot parse env file "%s": %w`, path, err)
	}

	return envs, nil
}

func LoadEnvString(str string) (*Map, error) {
	envsMap, err := godotenv.Unmarshal(str)
	if err != nil {
		return nil, err
	}

	return FromMap(envsMap), nil
}
