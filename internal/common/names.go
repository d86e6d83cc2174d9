package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// Qualify joins a namespace and a type name with a dot.
// Returns name unchanged if namespace is empty (global namespace).
func Qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}

	return namespace + "." + name
}

// SplitLines splits s on line breaks, tolerating CRLF and a trailing newline.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}
