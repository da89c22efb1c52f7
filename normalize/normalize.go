// Package normalize 提供字面量查找替换规则集。
// 各提取器用它改写从 CSV 单元格取出的数据库名、日志路径和文件路径。
//
// 特性：
//   - 纯字面量替换，无正则、无转义语义
//   - 替换所有出现位置，而非仅第一个
//   - 规则键互不相同且大小写敏感；键互为子串时行为未定义，由调用方避免
//
// 基本使用：
//
//	rules := normalize.Rules{"PROD-": "PRD_"}
//	name := rules.Apply("PROD-DB1") // "PRD_DB1"
package normalize

import "strings"

// Rules 字面量子串替换规则集，键为待查找子串，值为替换内容。
//
// 空规则集（nil 或长度为 0）等价于恒等变换。
type Rules map[string]string

// Apply 依次对 s 应用所有规则，返回替换后的字符串。
//
// 每条规则替换 s 中该模式的所有出现位置。输入为空字符串时原样返回。
// 纯函数，不修改规则集也不持有任何状态。
func (r Rules) Apply(s string) string {
	if len(r) == 0 || s == "" {
		return s
	}
	for pattern, replacement := range r {
		s = strings.ReplaceAll(s, pattern, replacement)
	}
	return s
}

// ApplyAll 对切片中每个元素应用规则，返回新切片，不修改输入。
func (r Rules) ApplyAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = r.Apply(v)
	}
	return out
}

// Merge 合并另一个规则集，other 中的同名键覆盖当前值，返回新规则集。
func (r Rules) Merge(other Rules) Rules {
	merged := make(Rules, len(r)+len(other))
	for k, v := range r {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Parse 解析紧凑规则字符串，格式为 "pattern:replacement;pattern:replacement"。
//
// 适合从环境变量或配置项传入规则。空字符串返回 nil。
// 缺少 ":" 的片段视为删除规则（替换为空串）。
//
// 示例：
//
//	rules := normalize.Parse("PROD-:PRD_; -TEMP")
func Parse(s string) Rules {
	if s == "" {
		return nil
	}
	rules := make(Rules)
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pattern, replacement, _ := strings.Cut(part, ":")
		if pattern == "" {
			continue
		}
		rules[pattern] = replacement
	}
	return rules
}
