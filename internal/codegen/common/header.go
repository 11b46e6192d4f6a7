package common

import (
	"fmt"
	"strings"
)

// FileHeader returns the "do not edit" banner placed at the top of generated
// files, one line per entry, each prefixed with the target language's line comment.
func FileHeader(comment, source string) string {
	version, err := GetVersion()
	if err != nil {
		version = Version
	}
	lines := []string{
		fmt.Sprintf("Code generated by resjs %s. DO NOT EDIT.", version),
	}
	if source != "" {
		lines = append(lines, "Source: "+source)
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(comment)
		b.WriteByte(' ')
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
