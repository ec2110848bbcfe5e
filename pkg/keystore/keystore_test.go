package keystore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-peerid"
)

// newTestIdentity 生成测试身份（512 位，加速测试）
func newTestIdentity(t *testing.T) *peerid.Identity {
	t.Helper()
	ident, err := peerid.Generate(512)
	require.NoError(t, err)
	return ident
}

// keystores 返回接口的所有实现，同一套用例跑两遍
func keystores(t *testing.T) map[string]Keystore {
	t.Helper()

	fs, err := NewFSKeystore(t.TempDir(), nil)
	require.NoError(t, err)

	return map[string]Keystore{
		"mem": NewMemKeystore(),
		"fs":  fs,
	}
}

func TestPutGet(t *testing.T) {
	for name, ks := range keystores(t) {
		t.Run(name, func(t *testing.T) {
			ident := newTestIdentity(t)
			id := ident.B58String()

			require.NoError(t, ks.Put(ident))

			ok, err := ks.Has(id)
			require.NoError(t, err)
			assert.True(t, ok)

			got, err := ks.Get(id)
			require.NoError(t, err)
			assert.True(t, got.Equal(ident))
			assert.Equal(t, ident.PrivateKeyRecord(), got.PrivateKeyRecord())
			assert.Equal(t, ident.PublicKeyRecord(), got.PublicKeyRecord())
		})
	}
}

func TestPut_Duplicate(t *testing.T) {
	for name, ks := range keystores(t) {
		t.Run(name, func(t *testing.T) {
			ident := newTestIdentity(t)
			require.NoError(t, ks.Put(ident))
			assert.ErrorIs(t, ks.Put(ident), ErrKeyExists)
		})
	}
}

func TestPut_NoPrivateKey(t *testing.T) {
	for name, ks := range keystores(t) {
		t.Run(name, func(t *testing.T) {
			idOnly := peerid.FromBytes([]byte{1, 2, 3})
			assert.ErrorIs(t, ks.Put(idOnly), ErrNoPrivateKey)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	for name, ks := range keystores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := ks.Get("QmDoesNotExist")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestDelete(t *testing.T) {
	for name, ks := range keystores(t) {
		t.Run(name, func(t *testing.T) {
			ident := newTestIdentity(t)
			id := ident.B58String()

			require.NoError(t, ks.Put(ident))
			require.NoError(t, ks.Delete(id))

			ok, err := ks.Has(id)
			require.NoError(t, err)
			assert.False(t, ok)

			assert.ErrorIs(t, ks.Delete(id), ErrKeyNotFound)
		})
	}
}

func TestList(t *testing.T) {
	for name, ks := range keystores(t) {
		t.Run(name, func(t *testing.T) {
			a := newTestIdentity(t)
			b := newTestIdentity(t)
			require.NoError(t, ks.Put(a))
			require.NoError(t, ks.Put(b))

			ids, err := ks.List()
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{a.B58String(), b.B58String()}, ids)
		})
	}
}

func TestFSKeystore_Encrypted(t *testing.T) {
	dir := t.TempDir()
	password := []byte("correct horse battery staple")

	ks, err := NewFSKeystore(dir, password)
	require.NoError(t, err)

	ident := newTestIdentity(t)
	id := ident.B58String()
	require.NoError(t, ks.Put(ident))

	// 密文中不应出现明文私钥记录
	raw, err := os.ReadFile(filepath.Join(dir, id+".key"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), string(ident.PrivateKeyRecord()))

	got, err := ks.Get(id)
	require.NoError(t, err)
	assert.True(t, got.Equal(ident))
}

func TestFSKeystore_WrongPassword(t *testing.T) {
	dir := t.TempDir()

	ks, err := NewFSKeystore(dir, []byte("right"))
	require.NoError(t, err)

	ident := newTestIdentity(t)
	require.NoError(t, ks.Put(ident))

	wrong, err := NewFSKeystore(dir, []byte("wrong"))
	require.NoError(t, err)

	_, err = wrong.Get(ident.B58String())
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestFSKeystore_MissingPassword(t *testing.T) {
	dir := t.TempDir()

	ks, err := NewFSKeystore(dir, []byte("secret"))
	require.NoError(t, err)

	ident := newTestIdentity(t)
	require.NoError(t, ks.Put(ident))

	plain, err := NewFSKeystore(dir, nil)
	require.NoError(t, err)

	_, err = plain.Get(ident.B58String())
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestFSKeystore_CorruptFile(t *testing.T) {
	dir := t.TempDir()

	ks, err := NewFSKeystore(dir, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "QmBogus.key"), []byte("garbage"), 0600))

	_, err = ks.Get("QmBogus")
	assert.ErrorIs(t, err, ErrInvalidKeyFile)
}

func TestFSKeystore_IdentityMismatch(t *testing.T) {
	dir := t.TempDir()

	ks, err := NewFSKeystore(dir, nil)
	require.NoError(t, err)

	// 把合法身份的文件挪到另一个标识符名下
	ident := newTestIdentity(t)
	require.NoError(t, ks.Put(ident))
	require.NoError(t, os.Rename(
		filepath.Join(dir, ident.B58String()+".key"),
		filepath.Join(dir, "QmSomeoneElse.key"),
	))

	_, err = ks.Get("QmSomeoneElse")
	assert.ErrorIs(t, err, ErrIdentityMismatch)
}
