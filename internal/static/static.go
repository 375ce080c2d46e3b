// Package static embeds the built-in cue sounds into the binary.
package static

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
)

const (
	filesDir = "files"
	soundExt = ".wav"
)

//go:embed files/*
var Files embed.FS

// FilePath returns the path of an embedded file.
func FilePath(name string) string {
	return path.Join(filesDir, name)
}

// SoundPath returns the embedded path of a built-in sound.
func SoundPath(sound string) string {
	return FilePath(sound + soundExt)
}

// Sounds lists the names of the built-in sounds.
func Sounds() []string {
	entries, err := fs.ReadDir(Files, filesDir)
	if err != nil {
		return nil
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != soundExt {
			continue
		}

		names = append(names, strings.TrimSuffix(e.Name(), soundExt))
	}

	slices.Sort(names)

	return names
}

// IsSound reports whether name is a built-in sound.
func IsSound(name string) bool {
	return slices.Contains(Sounds(), name)
}
