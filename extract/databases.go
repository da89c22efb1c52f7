package extract

import (
	"github.com/ceyewan/diskmap/clog"
	"github.com/ceyewan/diskmap/normalize"
	"github.com/ceyewan/diskmap/record"
	"github.com/ceyewan/diskmap/xerrors"
)

// Database 一个数据库的部署属性描述符。
type Database struct {
	// Name 归一化后的数据库名。
	Name string `json:"name" msgpack:"name"`

	// EdbFilePath 归一化后的数据库文件路径。
	EdbFilePath string `json:"edbFilePath" msgpack:"edbFilePath"`

	// LogFolderPath 归一化后的日志目录路径。
	LogFolderPath string `json:"logFolderPath" msgpack:"logFolderPath"`
}

// Databases 提取一台服务器上所有数据库的属性描述符。
//
// records 是逐数据库的行记录（一行一个数据库），按 serverPattern 过滤后
// 逐行做属性投影：数据库名、数据库文件路径、日志目录路径都经 rules
// 归一化。文件路径列支持主列名与遗留列名回退，两者都不存在返回
// MissingColumn；列存在但值为空返回 MissingData。
// 零行匹配返回 NotFound。结果保持输入行序。
func (e *Extractor) Databases(records []record.Record, serverPattern string, rules normalize.Rules) ([]Database, error) {
	field, err := serverField(records)
	if err != nil {
		return nil, err
	}

	matched := record.Filter(records, field, serverPattern)
	if len(matched) == 0 {
		return nil, xerrors.Wrapf(xerrors.ErrNotFound,
			"no database rows with %s matching %q", field, serverPattern)
	}

	databases := make([]Database, 0, len(matched))
	for _, rec := range matched {
		db, err := projectDatabase(rec, rules)
		if err != nil {
			return nil, err
		}
		databases = append(databases, db)
	}

	e.logger.Debug("extracted databases",
		clog.String("server", serverPattern),
		clog.Int("count", len(databases)),
	)

	return databases, nil
}

// projectDatabase 把一行记录投影为 Database 描述符。
func projectDatabase(rec record.Record, rules normalize.Rules) (Database, error) {
	name, ok := rec.Get(FieldName)
	if !ok || name == "" {
		return Database{}, xerrors.Wrapf(xerrors.ErrMissingData, "column %s is empty", FieldName)
	}

	edbPath, err := rec.Lookup(FieldEdbFilePath, FieldEdbFileLegacy)
	if err != nil {
		return Database{}, err
	}
	if edbPath == "" {
		return Database{}, xerrors.Wrapf(xerrors.ErrMissingData,
			"column %s is empty for database %s", FieldEdbFilePath, name)
	}

	logPath, err := rec.Lookup(FieldLogFolderPath, FieldLogFolderLegacy)
	if err != nil {
		return Database{}, err
	}
	if logPath == "" {
		return Database{}, xerrors.Wrapf(xerrors.ErrMissingData,
			"column %s is empty for database %s", FieldLogFolderPath, name)
	}

	return Database{
		Name:          rules.Apply(name),
		EdbFilePath:   rules.Apply(edbPath),
		LogFolderPath: rules.Apply(logPath),
	}, nil
}
