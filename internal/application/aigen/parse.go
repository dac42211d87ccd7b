package aigen

import (
	"regexp"
	"strings"
)

var numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ParseNumberedList 将模型返回的编号列表解析为字符串切片。
// 逐行去掉 "1. " 形式的编号前缀并裁剪空白，丢弃空行，保持原始顺序。
// 不去重，也不强制恰好 4 项，行数以模型实际输出为准。
func ParseNumberedList(raw string) []string {
	items := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = numberedPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
