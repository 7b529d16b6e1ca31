//go:build !linux && !darwin

package host

func uname() (string, string, string) {
	return "", "", ""
}
