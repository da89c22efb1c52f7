package extract

import (
	"sort"

	"github.com/ceyewan/diskmap/clog"
	"github.com/ceyewan/diskmap/normalize"
	"github.com/ceyewan/diskmap/record"
	"github.com/ceyewan/diskmap/xerrors"
)

// DatabaseCopy 一个数据库副本的部署属性描述符。
type DatabaseCopy struct {
	// Name 归一化后的数据库名。
	Name string `json:"name" msgpack:"name"`

	// ActivationPreference 激活优先级，1 为首选副本。
	ActivationPreference int `json:"activationPreference" msgpack:"activationPreference"`
}

// DatabaseCopies 提取一台服务器承载的所有数据库副本描述符。
//
// records 是逐副本的行记录，按 serverPattern 过滤后投影为
// DatabaseCopy，并按（数据库名，激活优先级）双键稳定排序。
// 零行匹配返回 NotFound。
func (e *Extractor) DatabaseCopies(records []record.Record, serverPattern string, rules normalize.Rules) ([]DatabaseCopy, error) {
	field, err := serverField(records)
	if err != nil {
		return nil, err
	}

	matched := record.Filter(records, field, serverPattern)
	if len(matched) == 0 {
		return nil, xerrors.Wrapf(xerrors.ErrNotFound,
			"no copy rows with %s matching %q", field, serverPattern)
	}

	copies := make([]DatabaseCopy, 0, len(matched))
	for _, rec := range matched {
		name, ok := rec.Get(FieldName)
		if !ok || name == "" {
			return nil, xerrors.Wrapf(xerrors.ErrMissingData, "column %s is empty", FieldName)
		}

		pref, err := rec.Int(FieldActivationPreference)
		if err != nil {
			return nil, err
		}

		copies = append(copies, DatabaseCopy{
			Name:                 rules.Apply(name),
			ActivationPreference: pref,
		})
	}

	sort.SliceStable(copies, func(i, j int) bool {
		if copies[i].Name != copies[j].Name {
			return copies[i].Name < copies[j].Name
		}
		return copies[i].ActivationPreference < copies[j].ActivationPreference
	})

	e.logger.Debug("extracted database copies",
		clog.String("server", serverPattern),
		clog.Int("count", len(copies)),
	)

	return copies, nil
}
