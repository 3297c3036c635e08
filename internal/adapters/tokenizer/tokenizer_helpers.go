package tokenizer

import "strings"

// splitTokens splits on runs of whitespace. No quoting or escaping is
// recognised, and token bytes are passed through untouched, including
// bytes that are not valid UTF-8.
func (t *WhitespaceTokenizer) splitTokens(line string) []string {
	return strings.Fields(line)
}

// appendCapped appends tok unless the command already holds maxArgs
// arguments, in which case tok is dropped.
func (t *WhitespaceTokenizer) appendCapped(args []string, tok string) []string {
	if len(args) >= t.maxArgs {
		return args
	}
	return append(args, tok)
}
