package keystore

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"

	"github.com/dep2p/go-peerid"
)

// ============================================================================
//                              密钥文件格式
// ============================================================================

// 密钥文件格式：
//
//   ┌────────────────────────────────────────────────────────────┐
//   │                    密钥文件                                 │
//   ├────────────────────────────────────────────────────────────┤
//   │  Magic:     "DEP2P-PID"  (9 bytes)                         │
//   │  Version:   uint8                                           │
//   │  Encrypted: uint8 (0=否, 1=是)                              │
//   │  Data:      编码私钥记录或加密数据                           │
//   └────────────────────────────────────────────────────────────┘
//
//   加密数据格式：
//   ┌────────────────────────────────────────────────────────────┐
//   │  Salt:       16 bytes                                       │
//   │  Nonce:      12 bytes                                       │
//   │  Ciphertext: 变长（AES-GCM 加密）                           │
//   └────────────────────────────────────────────────────────────┘
//
// 记录自身携带密钥类型标签，文件头无需重复。

const (
	keyFileMagic   = "DEP2P-PID"
	keyFileVersion = 1
	keyFileExt     = ".key"

	// 加密参数
	saltSize  = 16
	nonceSize = 12

	// Argon2 参数
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
)

// ============================================================================
//                              文件系统密钥存储
// ============================================================================

// FSKeystore 基于文件系统的身份密钥存储
//
// 每个身份一个文件，文件名为 <Base58 标识符>.key。
type FSKeystore struct {
	dir      string
	password []byte // 可选：用于加密存储
}

// 接口实现检查
var _ Keystore = (*FSKeystore)(nil)
var _ Keystore = (*MemKeystore)(nil)

// NewFSKeystore 创建文件系统密钥存储
//
// 参数：
//   - dir: 存储目录
//   - password: 加密密码（为空则明文存储）
func NewFSKeystore(dir string, password []byte) (*FSKeystore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	return &FSKeystore{
		dir:      dir,
		password: password,
	}, nil
}

// Has 检查是否存在指定标识符的身份
func (ks *FSKeystore) Has(id string) (bool, error) {
	_, err := os.Stat(ks.keyPath(id))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// Put 存储身份（必须携带私钥记录）
func (ks *FSKeystore) Put(ident *peerid.Identity) error {
	if !ident.HasPrivateKey() {
		return ErrNoPrivateKey
	}

	id := ident.B58String()
	exists, err := ks.Has(id)
	if err != nil {
		return err
	}
	if exists {
		return ErrKeyExists
	}

	data, err := ks.encodeFile(ident.PrivateKeyRecord())
	if err != nil {
		return err
	}

	return os.WriteFile(ks.keyPath(id), data, 0600)
}

// Get 按标识符取出并重建身份
//
// 重建后的身份标识符必须与文件名一致，否则视为文件损坏。
func (ks *FSKeystore) Get(id string) (*peerid.Identity, error) {
	data, err := os.ReadFile(ks.keyPath(id))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	record, err := ks.decodeFile(data)
	if err != nil {
		return nil, err
	}

	return rebuild(id, record)
}

// Delete 删除身份
func (ks *FSKeystore) Delete(id string) error {
	err := os.Remove(ks.keyPath(id))
	if os.IsNotExist(err) {
		return ErrKeyNotFound
	}
	return err
}

// List 列出所有身份标识符
func (ks *FSKeystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == keyFileExt {
			ids = append(ids, entry.Name()[:len(entry.Name())-len(keyFileExt)])
		}
	}
	return ids, nil
}

// keyPath 返回密钥文件路径
func (ks *FSKeystore) keyPath(id string) string {
	return filepath.Join(ks.dir, id+keyFileExt)
}

// encodeFile 组装密钥文件（可选加密）
func (ks *FSKeystore) encodeFile(record []byte) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(keyFileMagic)
	buf.WriteByte(keyFileVersion)

	if len(ks.password) > 0 {
		buf.WriteByte(1) // encrypted = true

		encrypted, err := encryptData(record, ks.password)
		if err != nil {
			return nil, err
		}
		buf.Write(encrypted)
	} else {
		buf.WriteByte(0) // encrypted = false
		buf.Write(record)
	}

	return buf.Bytes(), nil
}

// decodeFile 解析密钥文件，返回编码私钥记录
func (ks *FSKeystore) decodeFile(data []byte) ([]byte, error) {
	if len(data) < len(keyFileMagic)+2 {
		return nil, ErrInvalidKeyFile
	}

	if string(data[:len(keyFileMagic)]) != keyFileMagic {
		return nil, ErrInvalidKeyFile
	}
	offset := len(keyFileMagic)

	version := data[offset]
	if version != keyFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidKeyFile, version)
	}
	offset++

	encrypted := data[offset] == 1
	offset++

	record := data[offset:]

	if encrypted {
		if len(ks.password) == 0 {
			return nil, ErrInvalidPassword
		}
		return decryptData(record, ks.password)
	}

	return record, nil
}

// ============================================================================
//                              加密辅助函数
// ============================================================================

// encryptData 使用 Argon2id 派生密钥后以 AES-GCM 加密
func encryptData(plaintext, password []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	key := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	// 组装结果：salt || nonce || ciphertext
	result := make([]byte, saltSize+nonceSize+len(ciphertext))
	copy(result[:saltSize], salt)
	copy(result[saltSize:saltSize+nonceSize], nonce)
	copy(result[saltSize+nonceSize:], ciphertext)

	return result, nil
}

// decryptData 使用 AES-GCM 解密数据
func decryptData(data, password []byte) ([]byte, error) {
	if len(data) < saltSize+nonceSize {
		return nil, ErrDecryptionFailed
	}

	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+nonceSize]
	ciphertext := data[saltSize+nonceSize:]

	key := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
