package input

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadMessages_KeepsEmptyLines(t *testing.T) {
	path := writeFile(t, "messages.txt", "first message\n\n  second message  \n")

	lines, err := ReadMessages(path)
	if err != nil {
		t.Fatalf("ReadMessages: %v", err)
	}
	want := []string{"first message", "", "second message"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLines_DropsEmptyLines(t *testing.T) {
	path := writeFile(t, "feed.txt", "item one\n\n\nitem two\n")

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 || lines[0] != "item one" || lines[1] != "item two" {
		t.Errorf("lines = %v", lines)
	}
}

func TestReadMessages_MissingFile(t *testing.T) {
	if _, err := ReadMessages(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("ReadMessages should fail for a missing file")
	}
}
