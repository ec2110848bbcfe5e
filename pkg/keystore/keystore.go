// Package keystore 提供身份私钥的持久化存储
//
// 密钥库以 Base58 标识符为键，保存身份的编码私钥记录。
// 读取时通过 peerid.FromPrivateKey 重建完整身份，
// 因此派生不变量（id 与公钥记录的对应关系）在存取往返后依然成立。
package keystore

import (
	"errors"

	"github.com/dep2p/go-peerid"
)

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrKeyNotFound 密钥未找到
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyExists 密钥已存在
	ErrKeyExists = errors.New("key already exists")

	// ErrNoPrivateKey 身份不携带私钥记录，无法入库
	ErrNoPrivateKey = errors.New("identity has no private key")

	// ErrInvalidKeyFile 密钥文件格式无效
	ErrInvalidKeyFile = errors.New("invalid key file format")

	// ErrInvalidPassword 密码无效
	ErrInvalidPassword = errors.New("invalid password")

	// ErrDecryptionFailed 解密失败
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrIdentityMismatch 存储的私钥派生出的标识符与请求的不一致
	ErrIdentityMismatch = errors.New("stored key does not derive requested identity")
)

// ============================================================================
//                              Keystore 接口
// ============================================================================

// Keystore 身份密钥存储接口
type Keystore interface {
	// Has 检查是否存在指定标识符的身份
	Has(id string) (bool, error)

	// Put 存储身份（必须携带私钥记录）
	Put(ident *peerid.Identity) error

	// Get 按 Base58 标识符取出并重建身份
	Get(id string) (*peerid.Identity, error)

	// Delete 删除身份
	Delete(id string) error

	// List 列出所有身份的 Base58 标识符
	List() ([]string, error)
}

// ============================================================================
//                              内存密钥存储
// ============================================================================

// MemKeystore 内存密钥存储（用于测试）
type MemKeystore struct {
	records map[string][]byte
}

// NewMemKeystore 创建内存密钥存储
func NewMemKeystore() *MemKeystore {
	return &MemKeystore{
		records: make(map[string][]byte),
	}
}

// Has 检查是否存在指定标识符的身份
func (ks *MemKeystore) Has(id string) (bool, error) {
	_, ok := ks.records[id]
	return ok, nil
}

// Put 存储身份
func (ks *MemKeystore) Put(ident *peerid.Identity) error {
	if !ident.HasPrivateKey() {
		return ErrNoPrivateKey
	}
	id := ident.B58String()
	if _, ok := ks.records[id]; ok {
		return ErrKeyExists
	}
	ks.records[id] = ident.PrivateKeyRecord()
	return nil
}

// Get 按标识符取出并重建身份
func (ks *MemKeystore) Get(id string) (*peerid.Identity, error) {
	record, ok := ks.records[id]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return rebuild(id, record)
}

// Delete 删除身份
func (ks *MemKeystore) Delete(id string) error {
	if _, ok := ks.records[id]; !ok {
		return ErrKeyNotFound
	}
	delete(ks.records, id)
	return nil
}

// List 列出所有身份标识符
func (ks *MemKeystore) List() ([]string, error) {
	ids := make([]string, 0, len(ks.records))
	for id := range ks.records {
		ids = append(ids, id)
	}
	return ids, nil
}

// rebuild 从私钥记录重建身份并校验标识符
func rebuild(id string, record []byte) (*peerid.Identity, error) {
	ident, err := peerid.FromPrivateKey(record)
	if err != nil {
		return nil, err
	}
	if ident.B58String() != id {
		return nil, ErrIdentityMismatch
	}
	return ident, nil
}
