//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

type Repository interface {
	Getwd() (string, error)
	Write(path string, data []byte) error
	Exists(path string) bool
	MkdirAll(path string) error
}
