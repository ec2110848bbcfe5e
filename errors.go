package peerid

import "errors"

// 公共错误定义
var (
	// ErrInvalidEncoding 无效的文本编码（十六进制或 Base58）
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrKeyGeneration 密钥生成失败
	ErrKeyGeneration = errors.New("key generation failed")
)
