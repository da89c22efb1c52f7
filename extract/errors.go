package extract

import "github.com/ceyewan/diskmap/xerrors"

// IsNotFound 检查错误是否为服务器行零条匹配。
func IsNotFound(err error) bool {
	return xerrors.Is(err, xerrors.ErrNotFound)
}

// IsAmbiguous 检查错误是否为服务器行多条匹配。
func IsAmbiguous(err error) bool {
	return xerrors.Is(err, xerrors.ErrAmbiguous)
}

// IsInvalidConfiguration 检查错误是否为配置值非法（如 DbPerVolume 非正数）。
func IsInvalidConfiguration(err error) bool {
	return xerrors.Is(err, xerrors.ErrInvalidInput)
}

// IsMissingData 检查错误是否为必需数据字段为空。
func IsMissingData(err error) bool {
	return xerrors.Is(err, xerrors.ErrMissingData)
}

// IsMissingColumn 检查错误是否为候选列名全部缺失。
func IsMissingColumn(err error) bool {
	return xerrors.Is(err, xerrors.ErrMissingColumn)
}
