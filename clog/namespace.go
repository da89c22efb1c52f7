package clog

import "strings"

// NamespaceKey 是日志中命名空间的字段名，用于标识模块
const NamespaceKey = "namespace"

// namespaceJoiner 命名空间层级之间的连接符
const namespaceJoiner = "."

// namespaceString 根据 options 中的 parts 生成完整的命名空间字符串。
func namespaceString(options *options) string {
	if options == nil || len(options.namespaceParts) == 0 {
		return ""
	}
	return strings.Join(options.namespaceParts, namespaceJoiner)
}
