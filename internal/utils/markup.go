package utils

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, section, article"

// markupTagRe 插件片段里会出现的标签；其余的"<"都是正文
var markupTagRe = regexp.MustCompile(`(?i)</?(?:p|div|li|ul|ol|br|span|strong|em|b|i|a|h[1-6]|section|article|script|style)\b[^<>]*>`)

// StripMarkup 把插件抓到的 innerHTML 片段转成纯文本
// 块级元素换行，列表项加"• "前缀；不含已知标签的文本原样返回
func StripMarkup(text string) string {
	tags := markupTagRe.FindAllStringIndex(text, -1)
	if len(tags) == 0 {
		return text
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(escapeBareLT(text, tags)))
	if err != nil {
		return text
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("• ")
	doc.Find(blockSelector).AppendHtml("\n")

	var lines []string
	for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// escapeBareLT 把不属于已知标签的"<"转成 &lt;，避免解析器吞掉后面的正文
func escapeBareLT(text string, tags [][]int) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	next := 0
	for i := 0; i < len(text); i++ {
		for next < len(tags) && tags[next][1] <= i {
			next++
		}
		if text[i] == '<' && (next >= len(tags) || tags[next][0] != i) {
			b.WriteString("&lt;")
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}
