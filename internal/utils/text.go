package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	paragraphSepRe = regexp.MustCompile(`\n+`)
)

// Sanitize 归一化空白：不间断空格转空格、省略号转"..."、连续空白压成一个空格
// 幂等: Sanitize(Sanitize(s)) == Sanitize(s)
func Sanitize(text string) string {
	s := strings.ReplaceAll(text, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u2026", "...")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate 按字符数截断，超长时保留 maxLen-1 个字符并追加"…"
func Truncate(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	if maxLen < 1 {
		return ""
	}
	runes := []rune(text)
	head := strings.TrimRightFunc(string(runes[:maxLen-1]), unicode.IsSpace)
	return head + "…"
}

// SplitParagraphs 按换行切段，去掉空段
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range paragraphSepRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EnforceParagraphCount 最多保留 max 段，段之间空一行
// 没有任何段落时原样返回，不会凭空补段
func EnforceParagraphCount(text string, max int) string {
	paragraphs := SplitParagraphs(text)
	if len(paragraphs) == 0 {
		return text
	}
	if len(paragraphs) > max {
		paragraphs = paragraphs[:max]
	}
	return strings.Join(paragraphs, "\n\n")
}

// ContainsAnyFold 大小写不敏感的子串匹配
func ContainsAnyFold(text string, needles ...string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// ContainsWordFold 大小写不敏感的整词匹配，用于"AI"这类短缩写
func ContainsWordFold(text, word string) bool {
	word = strings.ToLower(word)
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if w == word {
			return true
		}
	}
	return false
}

// CapitalizeFirst 首字母大写，其余不变
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}
