//go:build windows

package runner

import "os"

// redirectOutput and dupCommandStream have no fd-duplication
// equivalent wired up here: this targets a POSIX host exclusively.
// These stubs keep the package buildable on Windows without
// implementing capture isolation there.
func redirectOutput(dir, prefix string) (string, error) {
	f, err := os.CreateTemp(dir, prefix+".*")
	if err != nil {
		return "", err
	}
	return f.Name(), nil
}

func dupCommandStream() (*os.File, error) {
	return os.Stdout, nil
}
