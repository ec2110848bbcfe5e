package peerid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_RoundTrip(t *testing.T) {
	ident := testIdentity(t)

	data, err := json.Marshal(ident)
	require.NoError(t, err)

	back, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, ident.Bytes(), back.Bytes())
	assert.Equal(t, ident.PrivateKeyRecord(), back.PrivateKeyRecord())
	assert.Equal(t, ident.PublicKeyRecord(), back.PublicKeyRecord())
}

func TestJSON_FieldsAreHex(t *testing.T) {
	ident := testIdentity(t)

	data, err := json.Marshal(ident)
	require.NoError(t, err)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(data, &obj))

	assert.Equal(t, ident.HexString(), obj["id"])
	assert.Contains(t, obj, "privKey")
	assert.Contains(t, obj, "pubKey")
}

func TestJSON_IdOnlyIdentityOmitsKeys(t *testing.T) {
	ident := FromBytes([]byte{0x12, 0x20, 1, 2, 3})

	data, err := json.Marshal(ident)
	require.NoError(t, err)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(data, &obj))

	assert.NotContains(t, obj, "privKey")
	assert.NotContains(t, obj, "pubKey")
}

func TestFromJSON_NoRecomputation(t *testing.T) {
	// id 与 pubKey 不一致的 JSON 也被原样接受：
	// FromJSON 不重新计算派生关系
	data := []byte(`{"id":"abcd","pubKey":"08001200"}`)

	ident, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, []byte{0xab, 0xcd}, ident.Bytes())
	assert.True(t, ident.HasPublicKey())
	assert.False(t, ident.HasPrivateKey())
}

func TestFromJSON_InvalidHex(t *testing.T) {
	_, err := FromJSON([]byte(`{"id":"zz"}`))
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = FromJSON([]byte(`{"id":"abcd","privKey":"not-hex"}`))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestFromJSON_MissingID(t *testing.T) {
	_, err := FromJSON([]byte(`{"privKey":"abcd"}`))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestFromJSON_NotJSON(t *testing.T) {
	_, err := FromJSON([]byte("not json at all"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
