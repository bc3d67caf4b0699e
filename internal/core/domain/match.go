package domain

import (
	"os"
	"strings"
)

// MatchName reports whether the final component of candidatePath equals targetName.
// The final component is everything after the last separator, or the whole path when
// there is none. With caseInsensitive both sides are compared after ASCII lowercasing.
func MatchName(candidatePath, targetName string, caseInsensitive bool) bool {
	name := baseName(candidatePath)
	if caseInsensitive {
		return asciiLower(name) == asciiLower(targetName)
	}
	return name == targetName
}

// baseName differs from filepath.Base in that it never cleans the path:
// "dir/" yields "" and "" yields "".
func baseName(p string) string {
	i := strings.LastIndexByte(p, '/')
	if os.PathSeparator != '/' {
		i = max(i, strings.LastIndexByte(p, os.PathSeparator))
	}
	return p[i+1:]
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
