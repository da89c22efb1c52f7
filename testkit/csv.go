package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// WriteCSV 在测试临时目录写入一个 CSV 夹具文件，返回文件路径。
//
// header 是表头行，rows 是数据行。文件随测试结束自动清理。
//
// 示例：
//
//	path := testkit.WriteCSV(t, "Servers.csv",
//	    []string{"ServerName", "DbPerVolume", "DbMap"},
//	    [][]string{{"EX01", "2", "DB1,DB2,DB3,DB4"}},
//	)
func WriteCSV(t *testing.T, name string, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("testkit: create csv fixture: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		t.Fatalf("testkit: write csv header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("testkit: write csv row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("testkit: flush csv fixture: %v", err)
	}

	return path
}
