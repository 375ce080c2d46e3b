// Package osutil holds operating system names and process constants
package osutil

const Windows = "windows"

type ExitCode int

const ExitError ExitCode = 1

// DirPermission is the mode of the directories interval creates.
const DirPermission = 0o755
