// Package record 提供容量规划 CSV 导出的行记录模型。
// 一行即一个字段名到字符串值的只读映射，由表头行确定字段名。
//
// 提取器不直接做文件 I/O：调用方通过 ReadAll 把 CSV 解析为记录切片，
// 再交给 extract 包做纯内存变换。
package record

import (
	"strconv"
	"strings"

	"github.com/ceyewan/diskmap/xerrors"
)

// Record 一行已解析的 CSV 记录，字段名到原始字符串值的映射。
//
// 构造后只读，单次提取中消费一次。值保留 CSV 单元格原文，
// 归一化由调用方按需进行。
type Record map[string]string

// Get 返回字段值。字段不存在时 ok 为 false；
// 字段存在但为空串时返回 ("", true)，两种情况语义不同。
func (r Record) Get(field string) (value string, ok bool) {
	value, ok = r[field]
	return value, ok
}

// Lookup 按顺序尝试一组别名字段，返回第一个存在的字段值。
//
// 用于主列名与遗留列名并存的场景（如文件路径列改名后仍需兼容旧导出）。
// 所有别名都不存在时返回 xerrors.ErrMissingColumn。
//
// 示例：
//
//	path, err := rec.Lookup("EdbFilePath", "EdbFile")
func (r Record) Lookup(fields ...string) (string, error) {
	for _, f := range fields {
		if v, ok := r[f]; ok {
			return v, nil
		}
	}
	return "", xerrors.Wrapf(xerrors.ErrMissingColumn,
		"none of columns [%s] present", strings.Join(fields, ", "))
}

// ResolveField 按顺序尝试一组别名字段，返回第一个存在的字段名本身。
//
// 与 Lookup 类似，但用于在记录构造后一次性确定实际列名，
// 之后按该列名统一访问。所有别名都不存在时返回 xerrors.ErrMissingColumn。
func (r Record) ResolveField(fields ...string) (string, error) {
	for _, f := range fields {
		if _, ok := r[f]; ok {
			return f, nil
		}
	}
	return "", xerrors.Wrapf(xerrors.ErrMissingColumn,
		"none of columns [%s] present", strings.Join(fields, ", "))
}

// Int 将字段值解析为整数。
//
// 字段缺失、为空或非数字都返回 xerrors.ErrInvalidInput。
func (r Record) Int(field string) (int, error) {
	v, ok := r[field]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, xerrors.Wrapf(xerrors.ErrInvalidInput, "column %s missing or empty", field)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, xerrors.Wrapf(xerrors.ErrInvalidInput, "column %s is not numeric: %q", field, v)
	}
	return n, nil
}

// List 将字段值按 "," 切分为有序列表，保留元素原始顺序。
//
// 每个元素去除首尾空白；字段缺失或为空返回 xerrors.ErrMissingData。
func (r Record) List(field string) ([]string, error) {
	v, ok := r[field]
	if !ok || strings.TrimSpace(v) == "" {
		return nil, xerrors.Wrapf(xerrors.ErrMissingData, "column %s is empty", field)
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out, nil
}
