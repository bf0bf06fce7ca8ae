package secmem

import "testing"

func TestZeroize(t *testing.T) {
	buf := []byte{0x01, 0xff, 0x7a, 0x00, 0x42}
	Zeroize(buf)
	for i, b := range buf {
		if b != 0 {
			t.Errorf("buf[%d] = %#x, want 0", i, b)
		}
	}
}

func TestZeroizeEmpty(t *testing.T) {
	Zeroize(nil)
	Zeroize([]byte{})
}
