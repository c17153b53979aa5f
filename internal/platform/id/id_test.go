package id

import (
	"strings"
	"testing"
	"time"
)

type fixed time.Time

func (f fixed) Now() time.Time { return time.Time(f) }

func TestTimeOrdered(t *testing.T) {
	t.Parallel()
	gen := TimeOrdered{Clock: fixed(time.UnixMilli(1700000000123))}
	a, b := gen.New(), gen.New()
	if !strings.HasPrefix(a, "1700000000123-") || len(a) != len("1700000000123-")+8 {
		t.Fatalf("unexpected id %q", a)
	}
	if a == b {
		t.Fatalf("ids minted in the same millisecond must differ")
	}
}
