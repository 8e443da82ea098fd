package pkguid

import (
	"strconv"
	"testing"
)

func TestGenerateRandomNodeIDRange(t *testing.T) {
	id, err := generateRandomNodeID()
	if err != nil {
		t.Fatalf("generateRandomNodeID: %v", err)
	}
	if id < 0 || id > 1023 {
		t.Fatalf("expected id within 0..1023, got %d", id)
	}
}

func TestSnowflakeGenerateUniqueAndOrdered(t *testing.T) {
	gen, err := NewSnowflake(-1)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	prev := gen.Generate()
	for i := 0; i < 100; i++ {
		next := gen.Generate()
		if next <= prev {
			t.Fatalf("expected increasing ids, got %d after %d", next, prev)
		}
		prev = next
	}
}

func TestSnowflakeGenerateString(t *testing.T) {
	gen, err := NewSnowflake(7)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	if _, err := strconv.ParseInt(gen.GenerateString(), 10, 64); err != nil {
		t.Fatalf("expected base 10 id: %v", err)
	}
}

func TestSnowflakeRejectsNodeOutOfRange(t *testing.T) {
	if _, err := NewSnowflake(1 << 20); err == nil {
		t.Fatalf("expected error for oversized node id")
	}
}
