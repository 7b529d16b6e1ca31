package session

import "os"

var (
	defaultHomeDir = os.UserHomeDir
	userHomeDir    = defaultHomeDir
)
