// Package utils 提供通用工具函数
package utils

import (
	"strings"
	"unicode"
)

// Slugify 从标题生成 URL slug：小写、空白转连字符、丢弃其余符号。
// 非 ASCII 字母（如中文标题）原样保留，交由 URL 编码处理。
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // 抑制开头的连字符

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsLetter(r) && r > unicode.MaxASCII:
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '/':
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
