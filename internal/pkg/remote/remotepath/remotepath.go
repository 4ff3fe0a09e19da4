// Package remotepath derives and validates paths of files and folders on the storage server.
//
// Remote paths are slash separated, a folder path always ends with the separator, a file path never does.
package remotepath

import (
	"net/url"
	"strings"
)

const Separator = "/"

// forbiddenCharacters are rejected by servers which do not validate names themselves.
const forbiddenCharacters = `\<>:"|?*`

type MalformedPathError struct {
	Path   string
	Reason string
}

func (e MalformedPathError) Error() string {
	return `malformed remote path "` + e.Path + `": ` + e.Reason
}

// Parent returns the parent folder of the path, it always ends with exactly one separator.
// A trailing separator of a folder path is ignored.
func Parent(path string) (string, error) {
	if path == "" {
		return "", MalformedPathError{Path: path, Reason: "path is empty"}
	}

	trimmed := strings.TrimRight(path, Separator)
	if trimmed == "" {
		return "", MalformedPathError{Path: path, Reason: "root has no parent"}
	}

	index := strings.LastIndex(trimmed, Separator)
	if index < 0 {
		return "", MalformedPathError{Path: path, Reason: "path has no parent"}
	}

	return strings.TrimRight(trimmed[:index], Separator) + Separator, nil
}

// Resolve the new path of a renamed file or folder.
// Trailing separators of the new name are ignored, the folder separator is added according to isFolder.
func Resolve(oldRemotePath, newName string, isFolder bool) (string, error) {
	parent, err := Parent(oldRemotePath)
	if err != nil {
		return "", err
	}

	newPath := parent + strings.TrimRight(newName, Separator)
	if isFolder {
		newPath += Separator
	}
	return newPath, nil
}

// IsFolder returns true if the path ends with the separator.
func IsFolder(path string) bool {
	return strings.HasSuffix(path, Separator)
}

// IsValidPath checks separator conflicts in the path.
// If versionHasForbiddenChars is set, the extended set of forbidden characters is also rejected.
func IsValidPath(path string, versionHasForbiddenChars bool) bool {
	if path == "" || strings.ContainsRune(path, 0) {
		return false
	}

	for _, segment := range strings.Split(strings.Trim(path, Separator), Separator) {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}

	if versionHasForbiddenChars {
		if strings.ContainsAny(path, forbiddenCharacters) {
			return false
		}
		for _, r := range path {
			if r < 0x20 || r == 0x7f {
				return false
			}
		}
	}

	return true
}

// IsValidName checks that the name is a single path segment.
func IsValidName(name string) bool {
	name = strings.TrimRight(name, Separator)
	switch {
	case name == "", name == ".", name == "..":
		return false
	case strings.Contains(name, Separator), strings.ContainsRune(name, 0):
		return false
	default:
		return true
	}
}

// EncodePath escapes each path segment, separators are kept.
func EncodePath(path string) string {
	segments := strings.Split(path, Separator)
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, Separator)
}
