package extract

import (
	"github.com/ceyewan/diskmap"
	"github.com/ceyewan/diskmap/clog"
	"github.com/ceyewan/diskmap/normalize"
	"github.com/ceyewan/diskmap/record"
	"github.com/ceyewan/diskmap/xerrors"
)

// DiskMap 提取一台服务器的磁盘映射。
//
// 在 records 中按 serverPattern 定位唯一一条服务器记录（零条匹配返回
// NotFound，多条返回 Ambiguous），读取 DbPerVolume 和 DbMap 列，
// 把 DbMap 按落盘顺序切分为磁盘描述符序列。
//
// 结果下标即下游的物理磁盘/挂载点编号。
func (e *Extractor) DiskMap(records []record.Record, serverPattern string, rules normalize.Rules) ([]string, error) {
	field, err := serverField(records)
	if err != nil {
		return nil, err
	}

	rec, err := record.MatchOne(records, field, serverPattern)
	if err != nil {
		return nil, err
	}

	perVolume, err := rec.Int(FieldDbPerVolume)
	if err != nil {
		return nil, err
	}
	if perVolume < 1 {
		return nil, xerrors.Wrapf(xerrors.ErrInvalidInput,
			"column %s must be positive, got %d", FieldDbPerVolume, perVolume)
	}

	names, err := rec.List(FieldDbMap)
	if err != nil {
		return nil, err
	}

	descriptors, err := diskmap.Build(names, perVolume, rules)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("built disk map",
		clog.String("server", serverPattern),
		clog.Int("databases", len(names)),
		clog.Int("volumes", len(descriptors)),
	)

	return descriptors, nil
}
