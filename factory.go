package peerid

import (
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/dep2p/go-peerid/pkg/lib/crypto"
	"github.com/dep2p/go-peerid/pkg/lib/multihash"
	"github.com/dep2p/go-peerid/pkg/lib/proto/key"
)

// DefaultKeyBits 默认 RSA 密钥大小（位）
const DefaultKeyBits = crypto.RSADefaultKeySize

// ============================================================================
//                              构造路径
// ============================================================================

// Generate 生成新的 RSA 密钥对并派生身份
//
// bits 为 0 时使用 DefaultKeyBits（2048）。公钥指数固定为 65537。
//
// 派生规则：id = multihash(sha2-256, encode(公钥记录))。
// 哈希输入是编码后的密钥记录字节，不是原始 DER。
//
// 密钥生成是 CPU 密集操作，大模数下耗时可观；嵌入响应式服务时
// 应放到后台任务中执行。
func Generate(bits int) (*Identity, error) {
	if bits == 0 {
		bits = DefaultKeyBits
	}

	priv, pub, err := crypto.GenerateRSAKey(bits, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	pubDER, err := pub.Raw()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	privDER, err := priv.Raw()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	pubRecord, err := (&key.PublicKey{Type: key.KeyType_RSA, Data: pubDER}).Marshal()
	if err != nil {
		return nil, err
	}
	privRecord, err := (&key.PrivateKey{Type: key.KeyType_RSA, Data: privDER}).Marshal()
	if err != nil {
		return nil, err
	}

	return &Identity{
		id:   multihash.Sum(pubRecord),
		priv: privRecord,
		pub:  pubRecord,
	}, nil
}

// FromPublicKey 从编码后的公钥记录重建身份
//
// 直接对给定字节计算 multihash，不做解码或校验：
// 线上收到的记录按原样哈希，保证与编码方计算的标识符逐字节一致
// （决策见 DESIGN.md）。
func FromPublicKey(pubRecord []byte) *Identity {
	pub := cloneBytes(pubRecord)
	return &Identity{
		id:  multihash.Sum(pub),
		pub: pub,
	}
}

// FromPrivateKey 从编码后的私钥记录重建身份
//
// 解码记录取得私钥 DER，解析出 RSA 参数后重建公钥，
// 重新编码为新的公钥记录并据此派生标识符。
//
// 私钥字节按调用方提供的原样保存；公钥记录总是重新规范化。
//
// 失败情形：
//   - 记录格式错误：key.ErrInvalidRecord / key.ErrUnknownKeyType
//   - DER 解析失败：crypto.ErrInvalidPrivateKey
func FromPrivateKey(privRecord []byte) (*Identity, error) {
	var rec key.PrivateKey
	if err := rec.Unmarshal(privRecord); err != nil {
		return nil, err
	}

	priv, err := crypto.UnmarshalRSAPrivateKey(rec.Data)
	if err != nil {
		return nil, err
	}

	pubDER, err := priv.GetPublic().Raw()
	if err != nil {
		return nil, err
	}
	pubRecord, err := (&key.PublicKey{Type: key.KeyType_RSA, Data: pubDER}).Marshal()
	if err != nil {
		return nil, err
	}

	return &Identity{
		id:   multihash.Sum(pubRecord),
		priv: cloneBytes(privRecord),
		pub:  pubRecord,
	}, nil
}

// FromBytes 将给定字节直接作为标识符
//
// 不校验长度或内容，产生仅标识符的身份（无密钥材料）。
func FromBytes(buf []byte) *Identity {
	return &Identity{id: cloneBytes(buf)}
}

// FromHexString 从十六进制文本重建仅标识符的身份
func FromHexString(s string) (*Identity, error) {
	buf, err := hexDecode(s)
	if err != nil {
		return nil, err
	}
	return FromBytes(buf), nil
}

// FromB58String 从 Base58 文本重建仅标识符的身份
func FromB58String(s string) (*Identity, error) {
	buf, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return FromBytes(buf), nil
}
