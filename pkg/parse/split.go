// Package parse splits command lines into words.
//
// The rules are small: words are separated by spaces, tabs, carriage
// returns, newlines and BEL characters, and a double-quoted span forms a
// single word with the quotes removed. There is no escaping. Words are only
// used to recognize builtins; lines run by the system shell are passed to it
// verbatim.
package parse

import "strings"

const delims = " \t\r\n\a"

// Split splits line into words. An unterminated double quote extends to the
// end of the line. A line consisting only of delimiters yields no words.
func Split(line string) []string {
	var words []string
	i := 0
	for {
		for i < len(line) && isDelim(line[i]) {
			i++
		}
		if i == len(line) {
			return words
		}
		if line[i] == '"' {
			end := strings.IndexByte(line[i+1:], '"')
			if end == -1 {
				return append(words, line[i+1:])
			}
			words = append(words, line[i+1:i+1+end])
			i += end + 2
			continue
		}
		start := i
		for i < len(line) && !isDelim(line[i]) && line[i] != '"' {
			i++
		}
		words = append(words, line[start:i])
	}
}

func isDelim(b byte) bool {
	return strings.IndexByte(delims, b) != -1
}
