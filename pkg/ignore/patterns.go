// File: pkg/ignore/patterns.go
package ignore

import (
	"regexp"
	"strings"
)

// Pattern is one compiled ignore rule.
type Pattern struct {
	Pattern *regexp.Regexp // Compiled regular expression for the rule
	Negate  bool           // Rule starts with '!' and re-includes matches
	Line    string         // Original pattern line
	LineNo  int            // 1-based line number in the source
}

var (
	doubleStarMiddle = regexp.MustCompile(`/\*\*/`)
	doubleStarEnd    = regexp.MustCompile(`/\*\*$`)
	doubleStarStart  = regexp.MustCompile(`^\*\*/`)
	singleStar       = regexp.MustCompile(`\*`)
)

// Placeholder tokens keep the regex groups inserted for '**' out of the
// later single-star pass.
const (
	tokenStarMiddle = "\x00m"
	tokenStarEnd    = "\x00e"
	tokenStarStart  = "\x00s"
)

// parsePatternLine turns one ignore-file line into a compiled regex and a
// negation flag. Blank lines, comments, and invalid patterns yield nil.
func parsePatternLine(line string) (*regexp.Regexp, bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// A leading backslash escapes a literal '#' or '!'.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	expr := escapeSpecialChars(trimmed)
	expr = handleDoubleStarPatterns(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, trimmed)

	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, false
	}

	return compiled, negate
}

// escapeSpecialChars escapes regex metacharacters except '*', '?', and '/',
// which carry wildcard meaning in ignore patterns.
func escapeSpecialChars(pattern string) string {
	specialChars := `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns replaces '**' segments, which may cross directory
// boundaries, with placeholder tokens. wildcardToRegex expands the tokens
// after the single-star pass.
func handleDoubleStarPatterns(pattern string) string {
	pattern = doubleStarMiddle.ReplaceAllString(pattern, tokenStarMiddle)
	pattern = doubleStarEnd.ReplaceAllString(pattern, tokenStarEnd)
	pattern = doubleStarStart.ReplaceAllString(pattern, tokenStarStart)
	return pattern
}

// wildcardToRegex converts the single-segment wildcards '*' and '?', neither
// of which crosses a '/', then expands the '**' tokens into their
// slash-crossing groups.
func wildcardToRegex(pattern string) string {
	pattern = singleStar.ReplaceAllString(pattern, `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", `[^/]`)
	pattern = strings.ReplaceAll(pattern, tokenStarMiddle, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, tokenStarEnd, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, tokenStarStart, `(.*/)?`)
	return pattern
}

// anchorPattern pins the converted expression to whole path segments. A rule
// with a trailing slash names a directory and covers everything below it; any
// other rule also covers a matching directory's contents. A leading slash
// anchors the rule to the scan root, otherwise it may match at any depth.
func anchorPattern(pattern, original string) string {
	if strings.HasSuffix(original, "/") {
		pattern = strings.TrimSuffix(pattern, "/") + "(/.*)?$"
	} else {
		pattern += "(|/.*)$"
	}

	if strings.HasPrefix(original, "/") {
		return "^" + strings.TrimPrefix(pattern, "/")
	}
	return "^(|.*/)" + pattern
}
