package pixel

import (
	"encoding/binary"
	"errors"
	"testing"
)

// rowBytes builds raw pixel data for a 1-row image where the element at
// linear index k*ch+c holds that index's value, per the spec's full.isb
// fixture convention (pixel k's channels hold k*ch, k*ch+1, ...).
func rowBytes(t *testing.T, semantic Semantic, width uint32, positions int) []byte {
	t.Helper()
	ch := semantic.Channels()
	ew := semantic.elementWidth()
	buf := make([]byte, int(width)*ch*ew)
	for k := 0; k < positions; k++ {
		for c := 0; c < ch; c++ {
			elem := k*ch + c
			off := elem * ew
			switch ew {
			case 1:
				buf[off] = byte(elem)
			case 2:
				binary.BigEndian.PutUint16(buf[off:], uint16(elem))
			default:
				binary.BigEndian.PutUint32(buf[off:], uint32(elem))
			}
		}
	}
	return buf
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-12
}

func TestGetRGBFloat_DenoiseRGB16(t *testing.T) {
	raw := rowBytes(t, DenoiseRGB16, 4, 1)
	v, err := New(DenoiseRGB16, 4, 1, raw)
	if err != nil {
		t.Fatal(err)
	}
	rgb, err := v.GetRGBFloat(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := [3]float64{0, 1.0 / 65536, 2.0 / 65536}
	if rgb != want {
		t.Errorf("GetRGBFloat = %v, want %v", rgb, want)
	}
	rgba, err := v.GetRGBAFloat(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantRGBA := [4]float64{0, 1.0 / 65536, 2.0 / 65536, 1.0}
	if rgba != wantRGBA {
		t.Errorf("GetRGBAFloat = %v, want %v", rgba, wantRGBA)
	}
}

func TestGetRGBFloat_DenoiseRGB8(t *testing.T) {
	raw := rowBytes(t, DenoiseRGB8, 4, 1)
	v, err := New(DenoiseRGB8, 4, 1, raw)
	if err != nil {
		t.Fatal(err)
	}
	rgb, err := v.GetRGBFloat(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := [3]float64{0, 1.0 / 256, 2.0 / 256}
	if rgb != want {
		t.Errorf("GetRGBFloat = %v, want %v", rgb, want)
	}
}

func TestGetRGBFloat_Depth16(t *testing.T) {
	raw := rowBytes(t, Depth16, 4, 2)
	v, err := New(Depth16, 4, 1, raw)
	if err != nil {
		t.Fatal(err)
	}
	rgb, err := v.GetRGBFloat(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := 1.0 / 65536
	for _, c := range rgb {
		if !almostEqual(c, want) {
			t.Errorf("GetRGBFloat(1,0) = %v, want all %v", rgb, want)
		}
	}
}

func TestGetRGBFloat_Depth32(t *testing.T) {
	raw := rowBytes(t, Depth32, 4, 3)
	v, err := New(Depth32, 4, 1, raw)
	if err != nil {
		t.Fatal(err)
	}
	rgb, err := v.GetRGBFloat(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := 2.0 / 4294967296
	for _, c := range rgb {
		if !almostEqual(c, want) {
			t.Errorf("GetRGBFloat(2,0) = %v, want all %v", rgb, want)
		}
	}
}

func TestGetRGBFloat_MonochromeLines8(t *testing.T) {
	raw := rowBytes(t, MonochromeLines8, 4, 2)
	v, err := New(MonochromeLines8, 4, 1, raw)
	if err != nil {
		t.Fatal(err)
	}
	rgb, err := v.GetRGBFloat(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := 1.0 / 256
	for _, c := range rgb {
		if !almostEqual(c, want) {
			t.Errorf("GetRGBFloat(1,0) = %v, want all %v", rgb, want)
		}
	}
}

func TestGetObjectID_OID32(t *testing.T) {
	raw := rowBytes(t, ObjectID32, 4, 3)
	v, err := New(ObjectID32, 4, 1, raw)
	if err != nil {
		t.Fatal(err)
	}
	for k := uint32(0); k < 3; k++ {
		got, err := v.GetObjectID(k, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("GetObjectID(%d,0) = %d, want %d", k, got, k)
		}
	}
}

func TestGetObjectID_SemanticMismatch(t *testing.T) {
	semantics := []Semantic{DenoiseRGB8, DenoiseRGBA8, DenoiseRGB16, DenoiseRGBA16, Depth16, Depth32, MonochromeLines8}
	for _, s := range semantics {
		raw := make([]byte, s.BytesPerPixel())
		v, err := New(s, 1, 1, raw)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := v.GetObjectID(0, 0); !errors.Is(err, ErrSemanticMismatch) {
			t.Errorf("%v: GetObjectID err = %v, want ErrSemanticMismatch", s, err)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	raw := make([]byte, DenoiseRGB8.BytesPerPixel()*4)
	v, err := New(DenoiseRGB8, 4, 1, raw)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.GetRGBFloat(4, 0); err == nil {
		t.Error("GetRGBFloat(width, 0) should fail")
	} else {
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || oob.Axis != "x" {
			t.Errorf("err = %v, want OutOfBoundsError on x", err)
		}
	}
	if _, err := v.GetRGBFloat(0, 1); err == nil {
		t.Error("GetRGBFloat(0, height) should fail")
	} else {
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || oob.Axis != "y" {
			t.Errorf("err = %v, want OutOfBoundsError on y", err)
		}
	}
}

func TestBytesPerPixel(t *testing.T) {
	cases := map[Semantic]int{
		DenoiseRGB8:      3,
		DenoiseRGBA8:     4,
		DenoiseRGB16:     6,
		DenoiseRGBA16:    8,
		Depth16:          2,
		Depth32:          4,
		MonochromeLines8: 1,
		ObjectID32:       4,
	}
	for s, want := range cases {
		if got := s.BytesPerPixel(); got != want {
			t.Errorf("%v.BytesPerPixel() = %d, want %d", s, got, want)
		}
	}
}

func TestParseSemanticRoundTrip(t *testing.T) {
	semantics := []Semantic{DenoiseRGB8, DenoiseRGBA8, DenoiseRGB16, DenoiseRGBA16, Depth16, Depth32, MonochromeLines8, ObjectID32}
	for _, s := range semantics {
		got, err := ParseSemantic(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("ParseSemantic(%q) = %v, want %v", s.String(), got, s)
		}
	}
}
