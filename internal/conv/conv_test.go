package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		in   int
		want uint32
	}{
		{0, 0},
		{1, 1},
		{255, 255},
		{math.MaxInt32, math.MaxInt32},
	}
	for _, tt := range tests {
		if got := IntToUint32(tt.in); got != tt.want {
			t.Errorf("IntToUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntToUint32Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IntToUint32(-1) should panic")
		}
	}()
	IntToUint32(-1)
}

func TestIntToInt32(t *testing.T) {
	if got := IntToInt32(-5); got != -5 {
		t.Errorf("IntToInt32(-5) = %d, want -5", got)
	}
	if got := IntToInt32(math.MaxInt32); got != math.MaxInt32 {
		t.Errorf("IntToInt32(MaxInt32) = %d", got)
	}
}

func TestIntToInt32Panics(t *testing.T) {
	if math.MaxInt == math.MaxInt32 {
		t.Skip("int is 32 bits")
	}
	defer func() {
		if recover() == nil {
			t.Error("IntToInt32(MaxInt32+1) should panic")
		}
	}()
	big := int64(math.MaxInt32) + 1
	IntToInt32(int(big))
}

func TestInt64ToInt(t *testing.T) {
	n, ok := Int64ToInt(1 << 20)
	if !ok || n != 1<<20 {
		t.Errorf("Int64ToInt(1<<20) = %d, %v", n, ok)
	}
	if math.MaxInt == math.MaxInt32 {
		if _, ok := Int64ToInt(math.MaxInt64); ok {
			t.Error("Int64ToInt(MaxInt64) should fail on 32-bit platforms")
		}
	}
}
