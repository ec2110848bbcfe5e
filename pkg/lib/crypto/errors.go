package crypto

import "errors"

// 密钥相关错误
var (
	// ErrInvalidPublicKey 公钥 DER 无效
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey 私钥 DER 无效
	ErrInvalidPrivateKey = errors.New("invalid private key")
)
