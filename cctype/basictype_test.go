package cctype

import "testing"

func TestBuiltinTypes(t *testing.T) {
	vectors := []struct {
		typ      *BasicType
		size     int
		signed   bool
		unsigned bool
		float    bool
	}{
		{Int, 4, true, false, false},
		{UInt, 4, false, true, false},
		{Long, 8, true, false, false},
		{ULong, 8, false, true, false},
		{Float, 4, false, false, true},
		{Double, 8, false, false, true},
	}

	for _, v := range vectors {
		t.Run(v.typ.Name(), func(t *testing.T) {
			if got := v.typ.Size(); got != v.size {
				t.Errorf("Size() = %d, want %d", got, v.size)
			}
			if got := v.typ.IsSigned(); got != v.signed {
				t.Errorf("IsSigned() = %v, want %v", got, v.signed)
			}
			if got := v.typ.IsUnsigned(); got != v.unsigned {
				t.Errorf("IsUnsigned() = %v, want %v", got, v.unsigned)
			}
			if got := v.typ.IsFloat(); got != v.float {
				t.Errorf("IsFloat() = %v, want %v", got, v.float)
			}
		})
	}
}

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	if tbl.Int() != Int || tbl.UInt() != UInt || tbl.Long() != Long ||
		tbl.ULong() != ULong || tbl.Float() != Float || tbl.Double() != Double {
		t.Fatal("Default() did not return the package-level built-in types")
	}
}
