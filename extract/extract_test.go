package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ceyewan/diskmap"
	"github.com/ceyewan/diskmap/normalize"
	"github.com/ceyewan/diskmap/record"
	"github.com/ceyewan/diskmap/xerrors"
)

func serverRecords() []record.Record {
	return []record.Record{
		{"ServerName": "EX01", "DbPerVolume": "2", "DbMap": "DB1,DB2,DB3,DB4"},
		{"ServerName": "EX02", "DbPerVolume": "2", "DbMap": "DB5,DB6,DB7"},
		{"ServerName": "DAG01", "DbPerVolume": "1", "DbMap": "DB8"},
	}
}

func TestDiskMap(t *testing.T) {
	ex := New()

	got, err := ex.DiskMap(serverRecords(), "EX01", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"DB1,DB2", "DB3,DB4"}, got)

	// 非整倍数时最后一组按剩余数量输出
	got, err = ex.DiskMap(serverRecords(), "EX02", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"DB5,DB6", "DB7"}, got)
}

func TestDiskMap_MatchSemantics(t *testing.T) {
	ex := New()

	// 不区分大小写
	_, err := ex.DiskMap(serverRecords(), "ex01", nil)
	require.NoError(t, err)

	// 通配符匹配唯一记录
	got, err := ex.DiskMap(serverRecords(), "DAG*", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"DB8"}, got)

	// 零条匹配
	_, err = ex.DiskMap(serverRecords(), "EX99", nil)
	require.True(t, IsNotFound(err), "err = %v", err)

	// 多条匹配
	_, err = ex.DiskMap(serverRecords(), "EX0?", nil)
	require.True(t, IsAmbiguous(err), "err = %v", err)
}

func TestDiskMap_Normalization(t *testing.T) {
	records := []record.Record{
		{"ServerName": "EX01", "DbPerVolume": "1", "DbMap": "PROD-DB1"},
	}

	got, err := New().DiskMap(records, "EX01", normalize.Rules{"PROD-": "PRD_"})
	require.NoError(t, err)
	require.Equal(t, []string{"PRD_DB1"}, got)
}

func TestDiskMap_InvalidDbPerVolume(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "zero", value: "0"},
		{name: "negative", value: "-2"},
		{name: "non numeric", value: "four"},
		{name: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []record.Record{
				{"ServerName": "EX01", "DbPerVolume": tt.value, "DbMap": "DB1,DB2"},
			}

			got, err := New().DiskMap(records, "EX01", nil)
			require.True(t, IsInvalidConfiguration(err), "err = %v", err)
			require.Nil(t, got, "失败时不应产生部分结果")
		})
	}
}

func TestDiskMap_EmptyDbMap(t *testing.T) {
	records := []record.Record{
		{"ServerName": "EX01", "DbPerVolume": "2", "DbMap": ""},
	}

	_, err := New().DiskMap(records, "EX01", nil)
	require.True(t, IsMissingData(err), "err = %v", err)
}

func TestDiskMap_LegacyServerColumn(t *testing.T) {
	records := []record.Record{
		{"Server": "EX01", "DbPerVolume": "2", "DbMap": "DB1,DB2"},
	}

	got, err := New().DiskMap(records, "EX01", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"DB1,DB2"}, got)
}

func TestDiskMap_NoServerColumn(t *testing.T) {
	records := []record.Record{{"Host": "EX01"}}

	_, err := New().DiskMap(records, "EX01", nil)
	require.True(t, IsMissingColumn(err), "err = %v", err)

	_, err = New().DiskMap(nil, "EX01", nil)
	require.True(t, IsMissingColumn(err), "err = %v", err)
}

func databaseRecords() []record.Record {
	return []record.Record{
		{"ServerName": "EX01", "Name": "PROD-DB1", "EdbFilePath": "C:\\db\\DB1.edb", "LogFolderPath": "C:\\log\\DB1"},
		{"ServerName": "EX01", "Name": "PROD-DB2", "EdbFilePath": "C:\\db\\DB2.edb", "LogFolderPath": "C:\\log\\DB2"},
		{"ServerName": "EX02", "Name": "DB9", "EdbFilePath": "C:\\db\\DB9.edb", "LogFolderPath": "C:\\log\\DB9"},
	}
}

func TestDatabases(t *testing.T) {
	rules := normalize.Rules{"PROD-": "PRD_", "C:": "/srv", "\\": "/"}

	got, err := New().Databases(databaseRecords(), "EX01", rules)
	require.NoError(t, err)
	require.Equal(t, []Database{
		{Name: "PRD_DB1", EdbFilePath: "/srv/db/DB1.edb", LogFolderPath: "/srv/log/DB1"},
		{Name: "PRD_DB2", EdbFilePath: "/srv/db/DB2.edb", LogFolderPath: "/srv/log/DB2"},
	}, got)
}

func TestDatabases_LegacyPathColumns(t *testing.T) {
	records := []record.Record{
		{"ServerName": "EX01", "Name": "DB1", "EdbFile": "C:\\db\\DB1.edb", "LogPath": "C:\\log\\DB1"},
	}

	got, err := New().Databases(records, "EX01", nil)
	require.NoError(t, err)
	require.Equal(t, "C:\\db\\DB1.edb", got[0].EdbFilePath)
	require.Equal(t, "C:\\log\\DB1", got[0].LogFolderPath)
}

func TestDatabases_MissingPathColumn(t *testing.T) {
	records := []record.Record{
		{"ServerName": "EX01", "Name": "DB1", "LogFolderPath": "C:\\log\\DB1"},
	}

	_, err := New().Databases(records, "EX01", nil)
	require.True(t, IsMissingColumn(err), "err = %v", err)
}

func TestDatabases_EmptyPath(t *testing.T) {
	records := []record.Record{
		{"ServerName": "EX01", "Name": "DB1", "EdbFilePath": "", "LogFolderPath": "C:\\log\\DB1"},
	}

	_, err := New().Databases(records, "EX01", nil)
	require.True(t, IsMissingData(err), "err = %v", err)
}

func TestDatabases_NotFound(t *testing.T) {
	_, err := New().Databases(databaseRecords(), "EX99", nil)
	require.True(t, IsNotFound(err), "err = %v", err)
}

func TestDatabaseCopies(t *testing.T) {
	records := []record.Record{
		{"ServerName": "EX01", "Name": "DB2", "ActivationPreference": "1"},
		{"ServerName": "EX01", "Name": "DB1", "ActivationPreference": "2"},
		{"ServerName": "EX01", "Name": "DB1", "ActivationPreference": "1"},
		{"ServerName": "EX02", "Name": "DB3", "ActivationPreference": "1"},
	}

	got, err := New().DatabaseCopies(records, "EX01", nil)
	require.NoError(t, err)
	// 按（数据库名，激活优先级）双键排序
	require.Equal(t, []DatabaseCopy{
		{Name: "DB1", ActivationPreference: 1},
		{Name: "DB1", ActivationPreference: 2},
		{Name: "DB2", ActivationPreference: 1},
	}, got)
}

func TestDatabaseCopies_InvalidPreference(t *testing.T) {
	records := []record.Record{
		{"ServerName": "EX01", "Name": "DB1", "ActivationPreference": "first"},
	}

	_, err := New().DatabaseCopies(records, "EX01", nil)
	require.True(t, IsInvalidConfiguration(err), "err = %v", err)
}

func TestPlacement(t *testing.T) {
	copies := []record.Record{
		{"ServerName": "EX01", "Name": "DB1", "ActivationPreference": "1"},
		{"ServerName": "EX01", "Name": "DB2", "ActivationPreference": "2"},
	}

	p, err := New().Placement(serverRecords(), databaseRecords(), copies, "EX01", normalize.Rules{"PROD-": "PRD_"})
	require.NoError(t, err)
	require.Equal(t, "EX01", p.Server)
	require.Equal(t, []string{"DB1,DB2", "DB3,DB4"}, p.DiskMap)
	require.Len(t, p.Databases, 2)
	require.Equal(t, "PRD_DB1", p.Databases[0].Name)
	require.Len(t, p.Copies, 2)
}

func TestPlacement_SkipsNilSections(t *testing.T) {
	p, err := New().Placement(serverRecords(), nil, nil, "EX02", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"DB5,DB6", "DB7"}, p.DiskMap)
	require.Nil(t, p.Databases)
	require.Nil(t, p.Copies)
}

func TestPlacement_FailFast(t *testing.T) {
	// 子提取失败时整体失败，不返回部分结果
	badDatabases := []record.Record{
		{"ServerName": "EX01", "Name": "DB1"},
	}

	p, err := New().Placement(serverRecords(), badDatabases, nil, "EX01", nil)
	require.Error(t, err)
	require.Nil(t, p)
}

func TestErrorClassifiers(t *testing.T) {
	require.True(t, IsNotFound(xerrors.Wrap(xerrors.ErrNotFound, "ctx")))
	require.False(t, IsNotFound(xerrors.ErrAmbiguous))
	require.True(t, IsAmbiguous(xerrors.ErrAmbiguous))
	require.True(t, IsInvalidConfiguration(xerrors.ErrInvalidInput))
	require.True(t, IsMissingData(xerrors.ErrMissingData))
	require.True(t, IsMissingColumn(xerrors.ErrMissingColumn))
}

// 直接调用 diskmap.Build 得到的前置条件错误同样落入分类体系。
func TestErrorClassifiers_BuildErrors(t *testing.T) {
	_, err := diskmap.Build([]string{"DB1"}, 0, nil)
	require.Error(t, err)
	require.True(t, IsInvalidConfiguration(err))

	_, err = diskmap.Build(nil, 2, nil)
	require.Error(t, err)
	require.True(t, IsMissingData(err))
}
