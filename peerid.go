package peerid

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// ============================================================================
//                              Identity - 身份实体
// ============================================================================

// Identity 加密节点身份
//
// 由工厂函数（Generate、From*）创建，创建后不可变：
// 内部缓冲区是私有副本，访问器返回副本，持有者之间没有共享可变状态。
//
// 字段含义：
//   - id: multihash 标识符（哈希函数代码 + 摘要长度 + 摘要）
//   - priv: 编码后的私钥记录（可选）
//   - pub: 编码后的公钥记录（可选）
//
// 从密钥材料构造的身份满足派生不变量
// id == multihash(sha2-256, 公钥记录)；仅标识符的身份
// （FromBytes/FromHexString/FromB58String/FromJSON）不携带强制关联，
// 派生关系的正确性由调用方负责。
type Identity struct {
	id   []byte
	priv []byte
	pub  []byte
}

// ============================================================================
//                              访问器
// ============================================================================

// Bytes 返回标识符的原始字节
func (i *Identity) Bytes() []byte {
	return cloneBytes(i.id)
}

// HexString 返回标识符的十六进制表示
func (i *Identity) HexString() string {
	return hex.EncodeToString(i.id)
}

// B58String 返回标识符的 Base58 表示
//
// 这是身份的规范外部表示，用于用户间分享和配置文件。
func (i *Identity) B58String() string {
	return base58.Encode(i.id)
}

// HasPrivateKey 检查身份是否携带私钥记录
func (i *Identity) HasPrivateKey() bool {
	return i.priv != nil
}

// HasPublicKey 检查身份是否携带公钥记录
func (i *Identity) HasPublicKey() bool {
	return i.pub != nil
}

// PrivateKeyRecord 返回编码后的私钥记录，不存在时返回 nil
func (i *Identity) PrivateKeyRecord() []byte {
	return cloneBytes(i.priv)
}

// PublicKeyRecord 返回编码后的公钥记录，不存在时返回 nil
func (i *Identity) PublicKeyRecord() []byte {
	return cloneBytes(i.pub)
}

// Equal 比较两个身份的标识符是否相等（逐字节）
func (i *Identity) Equal(other *Identity) bool {
	if other == nil {
		return false
	}
	return string(i.id) == string(other.id)
}

// ShortString 返回标识符的短字符串表示
//
// 格式：Base58 前 8 个字符，用于日志中的简短标识。
func (i *Identity) ShortString() string {
	s := i.B58String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// String 返回供人工检查的调试表示
//
// 标识符以 Base58 渲染，密钥记录以十六进制渲染。
// 仅用于显示，不可往返解析（往返请用 MarshalJSON/FromJSON）。
func (i *Identity) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Identity{id: %s", i.B58String())
	if i.pub != nil {
		fmt.Fprintf(&b, ", pubKey: %s", hex.EncodeToString(i.pub))
	}
	if i.priv != nil {
		fmt.Fprintf(&b, ", privKey: %s", hex.EncodeToString(i.priv))
	}
	b.WriteString("}")
	return b.String()
}

// cloneBytes 返回字节切片的副本，nil 保持为 nil
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
