package extract

import (
	"github.com/ceyewan/diskmap/normalize"
	"github.com/ceyewan/diskmap/record"
)

// Placement 一台服务器的完整部署载荷，交给下游部署机制消费。
type Placement struct {
	// Server 服务器名（服务器记录中的原始值）。
	Server string `json:"server" msgpack:"server"`

	// DiskMap 磁盘描述符序列，下标即物理磁盘/挂载点编号。
	DiskMap []string `json:"diskMap" msgpack:"diskMap"`

	// Databases 数据库属性描述符，保持源 CSV 行序。
	Databases []Database `json:"databases,omitempty" msgpack:"databases,omitempty"`

	// Copies 数据库副本描述符，按（名称，激活优先级）排序。
	Copies []DatabaseCopy `json:"copies,omitempty" msgpack:"copies,omitempty"`
}

// Placement 聚合一台服务器的全部提取结果。
//
// servers 是逐服务器的记录集（DiskMap 的输入），databases 和 copies
// 是逐数据库/逐副本的记录集，为 nil 时跳过对应部分。
// 任一子提取失败都终止整次聚合，不返回部分结果。
func (e *Extractor) Placement(servers, databases, copies []record.Record, serverPattern string, rules normalize.Rules) (*Placement, error) {
	field, err := serverField(servers)
	if err != nil {
		return nil, err
	}
	rec, err := record.MatchOne(servers, field, serverPattern)
	if err != nil {
		return nil, err
	}
	server, _ := rec.Get(field)

	diskMap, err := e.DiskMap(servers, serverPattern, rules)
	if err != nil {
		return nil, err
	}

	p := &Placement{
		Server:  server,
		DiskMap: diskMap,
	}

	if databases != nil {
		p.Databases, err = e.Databases(databases, serverPattern, rules)
		if err != nil {
			return nil, err
		}
	}

	if copies != nil {
		p.Copies, err = e.DatabaseCopies(copies, serverPattern, rules)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}
