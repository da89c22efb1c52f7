package record

import (
	"path"
	"strings"

	"github.com/ceyewan/diskmap/xerrors"
)

// Match 判断 value 是否匹配 pattern。
//
// 匹配不区分大小写，pattern 支持 "*" 和 "?" 通配符（path.Match 语义）。
// pattern 本身非法时退化为不区分大小写的精确比较。
func Match(value, pattern string) bool {
	ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(value))
	if err != nil {
		return strings.EqualFold(value, pattern)
	}
	return ok
}

// Filter 返回 field 字段匹配 pattern 的所有记录，保留输入顺序。
func Filter(records []Record, field, pattern string) []Record {
	var out []Record
	for _, rec := range records {
		if v, ok := rec[field]; ok && Match(v, pattern) {
			out = append(out, rec)
		}
	}
	return out
}

// MatchOne 返回 field 字段匹配 pattern 的唯一记录。
//
// 零条匹配返回 xerrors.ErrNotFound，多条匹配返回 xerrors.ErrAmbiguous。
// 提取是一次性变换，两种情况都直接终止，不返回部分结果。
func MatchOne(records []Record, field, pattern string) (Record, error) {
	matched := Filter(records, field, pattern)
	switch len(matched) {
	case 0:
		return nil, xerrors.Wrapf(xerrors.ErrNotFound, "no record with %s matching %q", field, pattern)
	case 1:
		return matched[0], nil
	default:
		return nil, xerrors.Wrapf(xerrors.ErrAmbiguous,
			"%d records with %s matching %q", len(matched), field, pattern)
	}
}
