// Package multihash 实现自描述哈希标识符
//
// Multihash 格式：[哈希函数代码(varint)] [摘要长度(varint)] [摘要字节]
//
// 自描述格式保证不同实现对同一公钥独立计算出相同的标识符，
// 并且标识符本身携带了所用哈希函数的信息，便于未来升级哈希算法。
//
// 本包固定使用 sha2-256（代码 0x12，摘要 32 字节）。
package multihash

import (
	"errors"
	"fmt"

	sha256 "github.com/minio/sha256-simd"
	"github.com/multiformats/go-varint"
)

// 哈希函数代码
const (
	// SHA2_256 sha2-256 的 multihash 函数代码
	SHA2_256 = 0x12

	// SHA2_256DigestSize sha2-256 摘要长度（字节）
	SHA2_256DigestSize = 32
)

var (
	// ErrInvalidMultihash multihash 格式无效
	ErrInvalidMultihash = errors.New("invalid multihash")

	// ErrTooShort 输入太短，无法解析 multihash 头部
	ErrTooShort = errors.New("multihash too short")
)

// Sum 计算输入数据的 sha2-256 multihash
//
// 返回格式：varint(0x12) || varint(32) || sha256(data)，共 34 字节。
func Sum(data []byte) []byte {
	digest := sha256.Sum256(data)
	return Encode(SHA2_256, digest[:])
}

// Encode 将哈希函数代码和摘要编码为 multihash
func Encode(code uint64, digest []byte) []byte {
	buf := make([]byte, 0, varint.UvarintSize(code)+varint.UvarintSize(uint64(len(digest)))+len(digest))
	buf = append(buf, varint.ToUvarint(code)...)
	buf = append(buf, varint.ToUvarint(uint64(len(digest)))...)
	buf = append(buf, digest...)
	return buf
}

// Decode 解析 multihash，返回哈希函数代码和摘要
//
// 仅做结构校验，不限定哈希函数代码。
func Decode(mh []byte) (uint64, []byte, error) {
	code, n, err := varint.FromUvarint(mh)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrTooShort, err)
	}
	mh = mh[n:]

	length, n, err := varint.FromUvarint(mh)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrTooShort, err)
	}
	mh = mh[n:]

	if uint64(len(mh)) != length {
		return 0, nil, fmt.Errorf("%w: digest length %d, header says %d", ErrInvalidMultihash, len(mh), length)
	}

	digest := make([]byte, length)
	copy(digest, mh)
	return code, digest, nil
}
