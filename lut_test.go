package avifpix

import "testing"

func TestLimitedToFullLuma(t *testing.T) {
	cases := []struct {
		depth int
		in    int
		want  int
	}{
		{depth: 8, in: 16, want: 0},
		{depth: 8, in: 235, want: 255},
		{depth: 8, in: 0, want: 0},
		{depth: 8, in: 255, want: 255},
		{depth: 10, in: 64, want: 0},
		{depth: 10, in: 940, want: 1023},
		{depth: 12, in: 256, want: 0},
		{depth: 12, in: 3760, want: 4095},
		{depth: 16, in: 1024, want: 0},
		{depth: 16, in: 60160, want: 65535},
	}

	for _, tc := range cases {
		if got := limitedToFullLuma(tc.depth, tc.in); got != tc.want {
			t.Errorf("limitedToFullLuma(%d, %d) = %d, want %d", tc.depth, tc.in, got, tc.want)
		}
	}
}

func TestLimitedToFullChroma(t *testing.T) {
	cases := []struct {
		depth int
		in    int
		want  int
	}{
		{depth: 8, in: 16, want: 0},
		{depth: 8, in: 240, want: 255},
		{depth: 8, in: 128, want: 128},
		{depth: 10, in: 64, want: 0},
		{depth: 10, in: 960, want: 1023},
		{depth: 12, in: 3840, want: 4095},
		{depth: 16, in: 61440, want: 65535},
	}

	for _, tc := range cases {
		if got := limitedToFullChroma(tc.depth, tc.in); got != tc.want {
			t.Errorf("limitedToFullChroma(%d, %d) = %d, want %d", tc.depth, tc.in, got, tc.want)
		}
	}
}

func TestLookupTablesFullRange(t *testing.T) {
	f := &PlanarYUVFrame{BitDepth: 8, Range: RangeFull, MatrixCoefficients: MatrixBT709}

	tables, err := newYUVLookupTables(f)
	if err != nil {
		t.Fatal(err)
	}

	if got := tables.luma[0]; got != 0 {
		t.Errorf("luma[0] = %v, want 0", got)
	}
	if got := tables.luma[255]; got != 1 {
		t.Errorf("luma[255] = %v, want 1", got)
	}
	if got := tables.chroma[128]; got <= -0.01 || got >= 0.01 {
		t.Errorf("chroma[128] = %v, want ~0", got)
	}
	if got := tables.chroma[0]; got != -0.5 {
		t.Errorf("chroma[0] = %v, want -0.5", got)
	}

	for i := 1; i < len(tables.luma); i++ {
		if tables.luma[i] < tables.luma[i-1] {
			t.Fatalf("luma table not monotonic at %d", i)
		}
	}
}

func TestLookupTablesLimitedRange(t *testing.T) {
	f := &PlanarYUVFrame{BitDepth: 8, Range: RangeLimited, MatrixCoefficients: MatrixBT709}

	tables, err := newYUVLookupTables(f)
	if err != nil {
		t.Fatal(err)
	}

	if got := tables.luma[16]; got != 0 {
		t.Errorf("luma[16] = %v, want 0", got)
	}
	if got := tables.luma[235]; got != 1 {
		t.Errorf("luma[235] = %v, want 1", got)
	}
	// Codes below the limited floor clamp to 0.
	if got := tables.luma[0]; got != 0 {
		t.Errorf("luma[0] = %v, want 0", got)
	}
	if got := tables.chroma[240]; got != 0.5 {
		t.Errorf("chroma[240] = %v, want 0.5", got)
	}
}

func TestLookupTablesIdentitySharesLuma(t *testing.T) {
	f := &PlanarYUVFrame{BitDepth: 10, Range: RangeLimited, MatrixCoefficients: MatrixIdentity}

	tables, err := newYUVLookupTables(f)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range tables.luma {
		if tables.chroma[i] != v {
			t.Fatalf("chroma[%d] = %v, want luma value %v", i, tables.chroma[i], v)
		}
	}
}

func TestIdentity8LimitedToFullTable(t *testing.T) {
	if identity8LimitedToFull[16] != 0 {
		t.Errorf("table[16] = %d, want 0", identity8LimitedToFull[16])
	}
	if identity8LimitedToFull[235] != 255 {
		t.Errorf("table[235] = %d, want 255", identity8LimitedToFull[235])
	}
	if identity8LimitedToFull[255] != 255 {
		t.Errorf("table[255] = %d, want 255", identity8LimitedToFull[255])
	}
}
