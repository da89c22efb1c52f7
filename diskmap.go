// Package diskmap 实现数据库到磁盘的分布算法。
//
// 容量规划工具导出的服务器记录里，DbMap 列是一份按落盘顺序排列的数据库
// 名称列表。本包把这份平铺列表按每卷数据库数切成连续分组，每组归一化后
// 重新拼成一个磁盘描述符，下游按结果下标映射物理磁盘/挂载点。
//
// 基本使用：
//
//	descriptors, err := diskmap.Build(
//	    []string{"DB1", "DB2", "DB3", "DB4"},
//	    2,
//	    normalize.Rules{"PROD-": "PRD_"},
//	)
//	// ["DB1,DB2", "DB3,DB4"]
package diskmap

import (
	"strings"

	"github.com/ceyewan/diskmap/normalize"
	"github.com/ceyewan/diskmap/xerrors"
)

// Separator 磁盘描述符内数据库名之间的分隔符。
const Separator = ","

// 前置条件哨兵。包装对应的 xerrors 分类哨兵，
// 直接调用 Build 的调用方也能用 extract 包的分类函数判断错误类别。
var (
	// ErrInvalidPerVolume 每卷数据库数不是正整数。
	ErrInvalidPerVolume = xerrors.Wrap(xerrors.ErrInvalidInput, "diskmap: databases per volume must be positive")

	// ErrEmptyNames 数据库名称列表为空。
	ErrEmptyNames = xerrors.Wrap(xerrors.ErrMissingData, "diskmap: database name list is empty")
)

// Build 把有序数据库名称列表按 perVolume 切分为磁盘描述符序列。
//
// 输入顺序具有磁盘分配语义，结果严格保持原有相对顺序，不去重、不排序。
// 每个窗口内的名称先经 rules 归一化，再以 "," 拼接为一个描述符。
// 列表长度不是 perVolume 整数倍时，最后一组按实际剩余数量输出，
// 不补齐也不报错。结果长度为 ceil(len(names)/perVolume)。
//
// perVolume < 1 返回 ErrInvalidPerVolume，names 为空返回 ErrEmptyNames，
// 两者都属于调用方契约违反，立即失败且不产生部分结果。
// 纯函数，可并发调用。
func Build(names []string, perVolume int, rules normalize.Rules) ([]string, error) {
	if perVolume < 1 {
		return nil, xerrors.Wrapf(ErrInvalidPerVolume, "got %d", perVolume)
	}
	if len(names) == 0 {
		return nil, ErrEmptyNames
	}

	descriptors := make([]string, 0, (len(names)+perVolume-1)/perVolume)
	for start := 0; start < len(names); start += perVolume {
		end := start + perVolume
		if end > len(names) {
			end = len(names)
		}
		group := rules.ApplyAll(names[start:end])
		descriptors = append(descriptors, strings.Join(group, Separator))
	}

	return descriptors, nil
}
