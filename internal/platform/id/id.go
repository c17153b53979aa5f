package id

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"roadmap/internal/platform/clock"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// TimeOrdered yields "<unix-millis>-<8 hex>" so ids sort by creation time and
// stay unique when several are minted within one millisecond.
type TimeOrdered struct {
	Clock clock.Clock
}

func (g TimeOrdered) New() string {
	clk := g.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(clk.Now().UnixMilli(), 10) + "-" + suffix
}
