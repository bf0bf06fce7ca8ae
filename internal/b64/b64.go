// Package b64 holds the base64 conventions for serialized key material.
// Protocol values (keys, ciphertexts, signatures) use URL-safe base64
// without padding; standard padded base64 is accepted on decode for
// interoperability with older exports.
package b64

import "encoding/base64"

// Encode encodes bytes as URL-safe base64 without padding.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode decodes URL-safe base64, falling back to the padded and standard
// alphabets for values produced by other tooling.
func Decode(s string) ([]byte, error) {
	if data, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	if data, err := base64.URLEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	if data, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
