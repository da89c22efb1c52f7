// Package codec 提供提取结果载荷的序列化能力。
// 核心提取器本身不落盘，序列化后的字节交给调用方递交下游部署机制。
package codec

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ceyewan/diskmap/xerrors"
)

// ErrUnsupportedCodec 不支持的序列化器类型
var ErrUnsupportedCodec = xerrors.New("codec: unsupported codec type")

// Codec 定义序列化接口
type Codec interface {
	Marshal(value any) ([]byte, error)
	Unmarshal(data []byte, dest any) error
}

// JSONCodec JSON 序列化器
type JSONCodec struct{}

// Marshal 序列化为 JSON
func (c *JSONCodec) Marshal(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Unmarshal 从 JSON 反序列化
func (c *JSONCodec) Unmarshal(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}

// MessagePackCodec MessagePack 序列化器
type MessagePackCodec struct{}

// Marshal 序列化为 MessagePack
// MessagePack 比 JSON 更高效：序列化速度快 2-3 倍，数据体积小 20-30%
func (c *MessagePackCodec) Marshal(value any) ([]byte, error) {
	return msgpack.Marshal(value)
}

// Unmarshal 从 MessagePack 反序列化
func (c *MessagePackCodec) Unmarshal(data []byte, dest any) error {
	return msgpack.Unmarshal(data, dest)
}

// New 创建序列化器
//
// 支持的序列化器类型:
//   - "json": 标准库 JSON 序列化，兼容性最好
//   - "msgpack": MessagePack 二进制序列化，性能更优
func New(codecType string) (Codec, error) {
	switch codecType {
	case "json", "":
		return &JSONCodec{}, nil
	case "msgpack":
		return &MessagePackCodec{}, nil
	default:
		return nil, xerrors.Wrapf(ErrUnsupportedCodec, "%q", codecType)
	}
}
