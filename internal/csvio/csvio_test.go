package csvio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	writeFile(t, path, "Date,Name,Amount\n01/25/2023,Ada Lovelace,\"$1,234.00\"\n02/21/2023,Alan Turing,75\n")

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if len(table.Columns) != 3 {
		t.Fatalf("got %d columns, want 3", len(table.Columns))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	// Currency formatting must survive the read untouched.
	if got := table.Rows[0]["Amount"]; got != "$1,234.00" {
		t.Errorf("Amount = %q, want %q", got, "$1,234.00")
	}
	if got := table.Rows[1]["Name"]; got != "Alan Turing" {
		t.Errorf("Name = %q, want %q", got, "Alan Turing")
	}
}

func TestReadTable_RaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.csv")
	writeFile(t, path, "Date,Name,Amount\n01/25/2023,Ada Lovelace\n")

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if _, ok := table.Rows[0]["Amount"]; ok {
		t.Error("Expected missing cell to be absent from the row")
	}
}

func TestReadTable_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	writeFile(t, path, "")

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Errorf("Expected empty table, got %d columns and %d rows", len(table.Columns), len(table.Rows))
	}
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestWriteTable_CreatesDirectoryAndTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "processed", "out.csv")

	if err := WriteTable(path, []string{"date", "name", "amount"}, [][]string{
		{"01/25/2023", "Ada Lovelace", "75"},
		{"02/21/2023", "Alan Turing", "-75"},
	}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	// Second write with fewer rows must fully replace the first artifact.
	if err := WriteTable(path, []string{"date", "name", "amount"}, [][]string{
		{"01/25/2023", "Ada Lovelace", "75"},
	}); err != nil {
		t.Fatalf("second WriteTable failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "date,name,amount\n01/25/2023,Ada Lovelace,75\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestWriteTable_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	rows := [][]string{{"3/28/2023", "Grace Hopper", "-75"}}
	if err := WriteTable(path, []string{"date", "name", "amount"}, rows); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if got := table.Rows[0]["name"]; got != "Grace Hopper" {
		t.Errorf("name = %q, want %q", got, "Grace Hopper")
	}
}
