//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package env

type IEnv interface {
	LookupEnv(key string) (string, bool)
}
