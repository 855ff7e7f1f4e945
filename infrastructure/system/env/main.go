package env

import (
	"os"

	domainEnv "github.com/t-kuni/aspa/domain/system/env"
)

type Env struct{}

func NewEnv() domainEnv.IEnv {
	return &Env{}
}

func (e *Env) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
