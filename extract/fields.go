package extract

import (
	"github.com/ceyewan/diskmap/record"
	"github.com/ceyewan/diskmap/xerrors"
)

// 容量规划工具导出 CSV 的列名。带 Legacy 后缀的是旧版导出的列名，
// 解析时按 主列名 -> 遗留列名 的顺序回退。
const (
	FieldServer       = "ServerName"
	FieldServerLegacy = "Server"

	FieldDbPerVolume = "DbPerVolume"
	FieldDbMap       = "DbMap"

	FieldName = "Name"

	FieldEdbFilePath   = "EdbFilePath"
	FieldEdbFileLegacy = "EdbFile"

	FieldLogFolderPath   = "LogFolderPath"
	FieldLogFolderLegacy = "LogPath"

	FieldActivationPreference = "ActivationPreference"
)

// serverField 从记录集中解析一次服务器名列的实际列名。
//
// 记录集为空或两种列名都不存在时返回 xerrors.ErrMissingColumn。
func serverField(records []record.Record) (string, error) {
	if len(records) == 0 {
		return "", xerrors.Wrapf(xerrors.ErrMissingColumn, "no records supplied")
	}
	return records[0].ResolveField(FieldServer, FieldServerLegacy)
}
