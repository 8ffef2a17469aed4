package schematree

import (
	"bytes"
	"strings"
	"testing"
)

func sampleTree() *Tree {
	// db1 -> orders -> {id, amount}
	tree := New()
	db1 := tree.Add(tree.Root(), "db1")
	orders := tree.Add(db1, "orders")
	tree.Add(orders, "id")
	tree.Add(orders, "amount")
	return tree
}

func render(t *Tree) string {
	var buf bytes.Buffer
	t.Print(&buf)
	return buf.String()
}

func TestPrintIndentation(t *testing.T) {
	got := render(sampleTree())
	want := strings.Join([]string{
		"db1",
		"    orders",
		"        id",
		"        amount",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintEmptyTree(t *testing.T) {
	if got := render(New()); got != "" {
		t.Errorf("expected no output for empty tree, got %q", got)
	}
}

func TestSubtreeMatchingKeepsAncestorPath(t *testing.T) {
	m, err := NewMatcher("amount", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	got := render(sampleTree().SubtreeMatching(m))
	want := "db1\n    orders\n        amount\n"
	if got != want {
		t.Errorf("unexpected subtree:\n%s\nwant:\n%s", got, want)
	}
}

func TestSubtreeMatchingMatchOnInnerNode(t *testing.T) {
	m, err := NewMatcher("orders", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	got := render(sampleTree().SubtreeMatching(m))
	// Only the matching node and its ancestors survive; children of a
	// matching node are not pulled in unless they match too.
	want := "db1\n    orders\n"
	if got != want {
		t.Errorf("unexpected subtree:\n%s\nwant:\n%s", got, want)
	}
}

func TestSubtreeMatchingAlwaysTrueIsIsomorphic(t *testing.T) {
	tree := sampleTree()
	m, err := NewMatcher("", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	filtered := tree.SubtreeMatching(m)
	if filtered.Len() != tree.Len() {
		t.Fatalf("expected %d nodes, got %d", tree.Len(), filtered.Len())
	}
	if render(filtered) != render(tree) {
		t.Errorf("filtered tree differs from source:\n%s\nvs:\n%s", render(filtered), render(tree))
	}
}

func TestSubtreeMatchingIsIdempotent(t *testing.T) {
	for _, query := range []string{"", "id", "orders", "nothing-matches-this"} {
		m, err := NewMatcher(query, false)
		if err != nil {
			t.Fatalf("NewMatcher(%q): %v", query, err)
		}
		once := sampleTree().SubtreeMatching(m)
		twice := once.SubtreeMatching(m)
		if render(once) != render(twice) {
			t.Errorf("query %q: second application changed the tree:\n%s\nvs:\n%s",
				query, render(once), render(twice))
		}
	}
}

func TestSubtreeMatchingDoesNotAliasSource(t *testing.T) {
	tree := sampleTree()
	m, err := NewMatcher("", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	filtered := tree.SubtreeMatching(m)
	tree.Add(tree.Root(), "db2")
	if strings.Contains(render(filtered), "db2") {
		t.Error("filtered tree aliases the source tree")
	}
}

func TestSubtreeMatchingSharedColumnNames(t *testing.T) {
	// The same column name under two tables must keep both paths.
	tree := New()
	db := tree.Add(tree.Root(), "db1")
	orders := tree.Add(db, "orders")
	tree.Add(orders, "id")
	users := tree.Add(db, "users")
	tree.Add(users, "id")

	m, err := NewMatcher("id", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	got := render(tree.SubtreeMatching(m))
	want := "db1\n    orders\n        id\n    users\n        id\n"
	if got != want {
		t.Errorf("unexpected subtree:\n%s\nwant:\n%s", got, want)
	}
}
