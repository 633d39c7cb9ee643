package fspath

import "strings"

// The functions in this file are pure functions of (text, style). They return
// byte offsets into text and never allocate; accessors on Path slice the
// original string with them.

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// indexSeparator returns the index of the first separator at or after from,
// or len(text) when there is none.
func indexSeparator(text string, from int, style Style) int {
	for i := from; i < len(text); i++ {
		if style.IsSeparator(text[i]) {
			return i
		}
	}

	return len(text)
}

// rootNameEnd returns the length of the root-name prefix.
//
// Recognised Windows forms:
//
//	C:               drive
//	\\server\share   UNC (bare \\server when no share follows)
//	\\?\  \\.\  \??\ device and NT prefixes; the root-name is the three
//	                 prefix characters and the fourth is the root-directory
func rootNameEnd(text string, style Style) int {
	if style != Windows || len(text) < 2 {
		return 0
	}

	if isDriveLetter(text[0]) && text[1] == ':' {
		return 2
	}

	if !style.IsSeparator(text[0]) {
		return 0
	}

	if len(text) >= 4 && style.IsSeparator(text[3]) &&
		(len(text) == 4 || !style.IsSeparator(text[4])) &&
		((style.IsSeparator(text[1]) && (text[2] == '?' || text[2] == '.')) ||
			(text[1] == '?' && text[2] == '?')) {
		return 3
	}

	if len(text) >= 3 && style.IsSeparator(text[1]) && !style.IsSeparator(text[2]) {
		serverEnd := indexSeparator(text, 2, style)
		if serverEnd+1 >= len(text) || style.IsSeparator(text[serverEnd+1]) {
			return serverEnd
		}

		return indexSeparator(text, serverEnd+1, style)
	}

	return 0
}

// rootDirectoryEnd returns the offset just past the separator run that
// follows the root-name.
func rootDirectoryEnd(text string, style Style) int {
	i := rootNameEnd(text, style)
	for i < len(text) && style.IsSeparator(text[i]) {
		i++
	}

	return i
}

// filenameStart returns the offset of the trailing filename element. A path
// ending in a separator has an empty filename.
func filenameStart(text string, style Style) int {
	start := rootNameEnd(text, style)
	i := len(text)
	for i > start && !style.IsSeparator(text[i-1]) {
		i--
	}

	return i
}

// parentPathEnd strips the filename, then the separator run before it, never
// reaching into the root path: "/a/b/" -> "/a/b", "/a/b" -> "/a", "/" -> "/".
func parentPathEnd(text string, style Style) int {
	relative := rootDirectoryEnd(text, style)
	i := len(text)
	for i > relative && !style.IsSeparator(text[i-1]) {
		i--
	}
	for i > relative && style.IsSeparator(text[i-1]) {
		i--
	}

	return i
}

// extensionStart returns the offset of the extension inside filename, or
// len(filename) when it has none. "." , ".." and dotfiles have no extension.
func extensionStart(filename string) int {
	if filename == "." || filename == ".." {
		return len(filename)
	}

	i := strings.LastIndexByte(filename, '.')
	if i <= 0 {
		return len(filename)
	}

	return i
}

// isUNCWithShare reports whether a root-name is a \\server\share form.
func isUNCWithShare(rootName string, style Style) bool {
	if len(rootName) < 3 || !style.IsSeparator(rootName[0]) || !style.IsSeparator(rootName[1]) {
		return false
	}

	return indexSeparator(rootName, 2, style) < len(rootName)
}

func isAbsolute(text string, style Style) bool {
	nameEnd := rootNameEnd(text, style)
	hasRootDir := rootDirectoryEnd(text, style) > nameEnd

	if style != Windows {
		return hasRootDir
	}

	if nameEnd == 0 {
		return false
	}

	return hasRootDir || isUNCWithShare(text[:nameEnd], style)
}

// relativeElements splits the relative part into filename elements. A
// trailing separator contributes a final empty element.
func relativeElements(text string, style Style) []string {
	var elements []string

	i := rootDirectoryEnd(text, style)
	for i < len(text) {
		j := i
		for j < len(text) && !style.IsSeparator(text[j]) {
			j++
		}
		elements = append(elements, text[i:j])

		if j == len(text) {
			break
		}

		for j < len(text) && style.IsSeparator(text[j]) {
			j++
		}
		if j == len(text) {
			elements = append(elements, "")
		}
		i = j
	}

	return elements
}

// normalizeRootName makes root-names that differ only in separator spelling
// compare equal.
func normalizeRootName(rootName string, style Style) string {
	if style != Windows {
		return rootName
	}

	return strings.ReplaceAll(rootName, "/", `\`)
}
