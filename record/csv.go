package record

import (
	"encoding/csv"
	"io"

	"github.com/ceyewan/diskmap/xerrors"
)

// ReadAll 从 r 读取整个 CSV，首行作为表头，返回有序的记录切片。
//
// 行宽必须与表头一致（encoding/csv 默认约束）。只要求表头存在，
// 不做任何 schema 校验；列是否满足提取需求由 extract 包判定。
func ReadAll(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, xerrors.Wrap(xerrors.ErrMissingData, "csv has no header row")
	}
	if err != nil {
		return nil, xerrors.Wrap(err, "read csv header")
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xerrors.Wrap(err, "read csv row")
		}

		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = row[i]
		}
		records = append(records, rec)
	}

	return records, nil
}
