package peerid

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ============================================================================
//                              JSON 表示
// ============================================================================

// identityJSON 身份的 JSON 形状
//
// 三个字段均为十六进制文本；缺失的密钥字段省略。
type identityJSON struct {
	ID      string `json:"id"`
	PrivKey string `json:"privKey,omitempty"`
	PubKey  string `json:"pubKey,omitempty"`
}

// MarshalJSON 序列化为 {id, privKey, pubKey} 的十六进制 JSON 对象
//
// 身份不携带的密钥字段直接省略；需要完整密钥材料的调用方
// 应先用 HasPrivateKey/HasPublicKey 检查。
func (i *Identity) MarshalJSON() ([]byte, error) {
	obj := identityJSON{
		ID: hex.EncodeToString(i.id),
	}
	if i.priv != nil {
		obj.PrivKey = hex.EncodeToString(i.priv)
	}
	if i.pub != nil {
		obj.PubKey = hex.EncodeToString(i.pub)
	}
	return json.Marshal(obj)
}

// FromJSON 从 JSON 表示重建身份
//
// 三个字段各自独立解码为字节后直接填入，不重新计算标识符，
// 也不校验 id 与 pubKey 的派生关系——正确性由产生该 JSON 的一方保证。
func FromJSON(data []byte) (*Identity, error) {
	var obj identityJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if obj.ID == "" {
		return nil, fmt.Errorf("%w: missing id field", ErrInvalidEncoding)
	}

	id, err := hexDecode(obj.ID)
	if err != nil {
		return nil, err
	}

	var priv, pub []byte
	if obj.PrivKey != "" {
		if priv, err = hexDecode(obj.PrivKey); err != nil {
			return nil, err
		}
	}
	if obj.PubKey != "" {
		if pub, err = hexDecode(obj.PubKey); err != nil {
			return nil, err
		}
	}

	return &Identity{id: id, priv: priv, pub: pub}, nil
}

// hexDecode 解码十六进制文本，失败统一报 ErrInvalidEncoding
func hexDecode(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return buf, nil
}
