// Package crypto 提供 go-peerid 的 RSA 密钥原语
//
// 封装标准库的密钥生成与 DER 编解码，作为身份派生的外部提供者：
//   - 密钥对生成（公钥指数固定为 65537）
//   - 公钥 DER：PKIX/X.509 格式
//   - 私钥 DER：PKCS#1 格式（解析时兼容 PKCS#8）
//   - 从私钥参数（模数、公钥指数）重建公钥
//
// 签名与验签不属于本库范围。
package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"
)

// RSA 密钥常量
const (
	// RSAMinKeySize RSA 最小密钥大小（位）
	//
	// 身份派生本身对密钥强度没有要求，512 位下限只挡住
	// 明显无意义的输入；安全场景请使用 RSADefaultKeySize 以上。
	RSAMinKeySize = 512
	// RSADefaultKeySize RSA 默认密钥大小（位）
	RSADefaultKeySize = 2048
	// RSAMaxKeySize RSA 最大密钥大小（位）
	RSAMaxKeySize = 8192
)

// ============================================================================
//                              RSAPublicKey
// ============================================================================

// RSAPublicKey RSA 公钥
type RSAPublicKey struct {
	k *rsa.PublicKey
}

// Raw 返回 PKIX 格式的公钥 DER 字节
func (k *RSAPublicKey) Raw() ([]byte, error) {
	return x509.MarshalPKIXPublicKey(k.k)
}

// Equals 比较两个公钥是否相等
func (k *RSAPublicKey) Equals(other *RSAPublicKey) bool {
	if other == nil {
		return false
	}
	return k.k.N.Cmp(other.k.N) == 0 && k.k.E == other.k.E
}

// ============================================================================
//                              RSAPrivateKey
// ============================================================================

// RSAPrivateKey RSA 私钥
type RSAPrivateKey struct {
	k *rsa.PrivateKey
}

// Raw 返回 PKCS#1 格式的私钥 DER 字节
func (k *RSAPrivateKey) Raw() ([]byte, error) {
	return x509.MarshalPKCS1PrivateKey(k.k), nil
}

// Equals 比较两个私钥是否相等
func (k *RSAPrivateKey) Equals(other *RSAPrivateKey) bool {
	if other == nil {
		return false
	}
	return k.k.D.Cmp(other.k.D) == 0 && k.k.N.Cmp(other.k.N) == 0
}

// GetPublic 返回对应的公钥
//
// 公钥由私钥参数（模数 N、公钥指数 E）重建，与生成时的公钥一致。
func (k *RSAPrivateKey) GetPublic() *RSAPublicKey {
	return &RSAPublicKey{k: &k.k.PublicKey}
}

// ============================================================================
//                              工厂函数
// ============================================================================

// GenerateRSAKey 生成新的 RSA 密钥对
//
// 公钥指数固定为 65537（crypto/rsa 的标准取值）。
//
// 参数：
//   - bits: 密钥大小（位）
//   - src: 随机源
func GenerateRSAKey(bits int, src io.Reader) (*RSAPrivateKey, *RSAPublicKey, error) {
	if bits < RSAMinKeySize {
		return nil, nil, fmt.Errorf("RSA key size must be at least %d bits", RSAMinKeySize)
	}
	if bits > RSAMaxKeySize {
		return nil, nil, fmt.Errorf("RSA key size must be at most %d bits", RSAMaxKeySize)
	}

	priv, err := rsa.GenerateKey(src, bits)
	if err != nil {
		return nil, nil, err
	}
	return &RSAPrivateKey{k: priv}, &RSAPublicKey{k: &priv.PublicKey}, nil
}

// UnmarshalRSAPublicKey 从 DER 字节解析 RSA 公钥
//
// 支持 PKIX/X.509 格式
func UnmarshalRSAPublicKey(data []byte) (*RSAPublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInvalidPublicKey
	}

	return &RSAPublicKey{k: rsaPub}, nil
}

// UnmarshalRSAPrivateKey 从 DER 字节解析 RSA 私钥
//
// 支持 PKCS#1 和 PKCS#8 格式
func UnmarshalRSAPrivateKey(data []byte) (*RSAPrivateKey, error) {
	// 尝试 PKCS#1 格式
	if priv, err := x509.ParsePKCS1PrivateKey(data); err == nil {
		return &RSAPrivateKey{k: priv}, nil
	}

	// 尝试 PKCS#8 格式
	if key, err := x509.ParsePKCS8PrivateKey(data); err == nil {
		if rsaKey, ok := key.(*rsa.PrivateKey); ok {
			return &RSAPrivateKey{k: rsaKey}, nil
		}
	}

	return nil, ErrInvalidPrivateKey
}
