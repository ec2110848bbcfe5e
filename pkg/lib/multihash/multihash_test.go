package multihash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestSum(t *testing.T) {
	mh := Sum([]byte("hello"))

	if len(mh) != 34 {
		t.Fatalf("Sum() len = %d, want 34", len(mh))
	}
	if mh[0] != SHA2_256 {
		t.Errorf("Sum() code = 0x%x, want 0x12", mh[0])
	}
	if mh[1] != SHA2_256DigestSize {
		t.Errorf("Sum() digest length = %d, want 32", mh[1])
	}

	// sha256("hello") 的已知摘要
	want, _ := hex.DecodeString("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824")
	if !bytes.Equal(mh[2:], want) {
		t.Errorf("Sum() digest = %x, want %x", mh[2:], want)
	}
}

func TestSum_Deterministic(t *testing.T) {
	a := Sum([]byte("payload"))
	b := Sum([]byte("payload"))
	if !bytes.Equal(a, b) {
		t.Error("Sum() is not deterministic")
	}
}

func TestDecode(t *testing.T) {
	mh := Sum([]byte("hello"))

	code, digest, err := Decode(mh)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if code != SHA2_256 {
		t.Errorf("Decode() code = 0x%x, want 0x12", code)
	}
	if len(digest) != SHA2_256DigestSize {
		t.Errorf("Decode() digest len = %d, want 32", len(digest))
	}
	if !bytes.Equal(mh[2:], digest) {
		t.Error("Decode() digest does not match encoded bytes")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	digest := []byte{0xde, 0xad, 0xbe, 0xef}
	mh := Encode(0x12, digest)

	code, got, err := Decode(mh)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if code != 0x12 {
		t.Errorf("Decode() code = 0x%x, want 0x12", code)
	}
	if !bytes.Equal(got, digest) {
		t.Errorf("Decode() digest = %x, want %x", got, digest)
	}
}

func TestDecode_TooShort(t *testing.T) {
	_, _, err := Decode(nil)
	if !errors.Is(err, ErrTooShort) {
		t.Errorf("Decode(nil) error = %v, want ErrTooShort", err)
	}
}

func TestDecode_LengthMismatch(t *testing.T) {
	// 头部声明 32 字节，实际只有 3 字节
	mh := []byte{0x12, 0x20, 1, 2, 3}
	_, _, err := Decode(mh)
	if !errors.Is(err, ErrInvalidMultihash) {
		t.Errorf("Decode(truncated) error = %v, want ErrInvalidMultihash", err)
	}
}
