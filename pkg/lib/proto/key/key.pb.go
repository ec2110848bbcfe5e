// Package key 包含密钥记录的 protobuf 定义
//
// 密钥记录是跨实现互操作的线格式（wire format），任何符合规范的
// 解码器必须能接受任何符合规范的编码器产生的记录：
//
//	enum KeyType { RSA = 0; }
//	message PublicKey  { required KeyType Type = 1; required bytes Data = 2; }
//	message PrivateKey { required KeyType Type = 1; required bytes Data = 2; }
//
// 两个字段均为 required 语义：编码时总是写出（包括空的 Data），
// 解码时缺失即报错。这保证了 decode(encode(p, t)) 对任意负载
// （含空负载）都精确还原 (t, p)。
package key

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrInvalidRecord 密钥记录格式无效（截断、字段缺失或线类型错误）
	ErrInvalidRecord = errors.New("invalid key record")

	// ErrUnknownKeyType 无法识别的密钥类型标签
	ErrUnknownKeyType = errors.New("unknown key type")
)

// ============================================================================
//                              KeyType 枚举
// ============================================================================

// KeyType 密钥算法类型
//
// 目前仅定义 RSA = 0，其余值为未来算法保留。
// 解码器不会静默接受保留值：未知标签一律报 ErrUnknownKeyType。
type KeyType int32

const (
	// KeyType_RSA RSA 密钥
	KeyType_RSA KeyType = 0
)

// String 返回密钥类型名称
func (kt KeyType) String() string {
	switch kt {
	case KeyType_RSA:
		return "RSA"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(kt))
	}
}

// ============================================================================
//                              消息定义
// ============================================================================

// PublicKey 公钥记录
type PublicKey struct {
	// Type 密钥算法类型
	Type KeyType
	// Data 原始密钥字节（DER 编码）
	Data []byte
}

// PrivateKey 私钥记录
type PrivateKey struct {
	// Type 密钥算法类型
	Type KeyType
	// Data 原始密钥字节（DER 编码）
	Data []byte
}

// ============================================================================
//                              编码
// ============================================================================

// Marshal 序列化公钥记录
func (m *PublicKey) Marshal() ([]byte, error) {
	return marshalRecord(m.Type, m.Data), nil
}

// Marshal 序列化私钥记录
func (m *PrivateKey) Marshal() ([]byte, error) {
	return marshalRecord(m.Type, m.Data), nil
}

// marshalRecord 按 required 语义写出两个字段
//
//   - Field 1 (Type): varint
//   - Field 2 (Data): length-delimited，空负载也写出（tag + 长度 0）
func marshalRecord(kt KeyType, data []byte) []byte {
	buf := make([]byte, 0, len(data)+8)
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(kt))
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendBytes(buf, data)
	return buf
}

// ============================================================================
//                              解码
// ============================================================================

// Unmarshal 反序列化公钥记录
func (m *PublicKey) Unmarshal(data []byte) error {
	kt, payload, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	m.Type = kt
	m.Data = payload
	return nil
}

// Unmarshal 反序列化私钥记录
func (m *PrivateKey) Unmarshal(data []byte) error {
	kt, payload, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	m.Type = kt
	m.Data = payload
	return nil
}

// unmarshalRecord 解析密钥记录
//
// 校验规则：
//   - Type 和 Data 均为必需字段，缺失报 ErrInvalidRecord
//   - 已知字段的线类型错误报 ErrInvalidRecord
//   - 未知字段号跳过（向前兼容），但字段本身必须结构完整
//   - Type 值必须是已定义的 KeyType，否则报 ErrUnknownKeyType
func unmarshalRecord(data []byte) (KeyType, []byte, error) {
	var (
		kt      KeyType
		payload []byte
		sawType bool
		sawData bool
	)

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return 0, nil, fmt.Errorf("%w: malformed field tag", ErrInvalidRecord)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return 0, nil, fmt.Errorf("%w: malformed Type field", ErrInvalidRecord)
			}
			data = data[n:]
			kt = KeyType(v)
			sawType = true

		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, nil, fmt.Errorf("%w: malformed Data field", ErrInvalidRecord)
			}
			data = data[n:]
			payload = make([]byte, len(v))
			copy(payload, v)
			sawData = true

		case num == 1 || num == 2:
			return 0, nil, fmt.Errorf("%w: wrong wire type for field %d", ErrInvalidRecord, num)

		default:
			// 未知字段：跳过（向前兼容）
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return 0, nil, fmt.Errorf("%w: malformed field %d", ErrInvalidRecord, num)
			}
			data = data[n:]
		}
	}

	if !sawType {
		return 0, nil, fmt.Errorf("%w: missing Type field", ErrInvalidRecord)
	}
	if !sawData {
		return 0, nil, fmt.Errorf("%w: missing Data field", ErrInvalidRecord)
	}
	if kt != KeyType_RSA {
		return 0, nil, fmt.Errorf("%w: %d", ErrUnknownKeyType, int32(kt))
	}

	return kt, payload, nil
}
