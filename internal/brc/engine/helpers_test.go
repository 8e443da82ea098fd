package engine

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//nolint:gochecknoglobals // fixture
var stationNames = []string{
	"Abha", "Abidjan", "Abéché", "Accra", "Addis Ababa", "Adelaide", "Aden",
	"Bulawayo", "Hamburg", "İzmir", "Kraków", "Oslo", "Petropavlovsk-Kamchatsky",
	"Rome", "San José", "St. John's", "São Paulo", "Ürümqi", "Zürich", "a;b",
}

func writeInput(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

// syntheticInput returns n random records drawn from stationNames.
func syntheticInput(seed int64, n int) string {
	rng := rand.New(rand.NewSource(seed))

	var sb strings.Builder
	for i := 0; i < n; i++ {
		v := rng.Intn(1999) - 999
		sign := ""
		if v < 0 {
			sign = "-"
			v = -v
		}
		fmt.Fprintf(&sb, "%s;%s%d.%d\n", stationNames[rng.Intn(len(stationNames))], sign, v/10, v%10)
	}
	return sb.String()
}
