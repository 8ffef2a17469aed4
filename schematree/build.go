package schematree

import "fmt"

// Item is one row of introspection metadata. Schema is empty for
// backends without schema namespaces (sqlite); Column is empty for
// tables without columns.
type Item struct {
	Schema string
	Table  string
	Column string
}

// Build assembles a schema tree from metadata rows. The rows must be
// grouped by (schema, table): a schema or table node is opened when its
// name first appears and every later row for it must be contiguous.
// Out-of-order input would silently produce duplicate nodes under
// single-pass grouping, so it is rejected with an explicit error instead.
func Build(items []Item) (*Tree, error) {
	tree := New()
	seenSchemas := map[string]bool{}
	seenTables := map[string]bool{}
	schemaNode := tree.Root()
	tableNode := -1
	var curSchema, curTable string
	started := false

	for _, item := range items {
		if !started || item.Schema != curSchema {
			if seenSchemas[item.Schema] {
				return nil, fmt.Errorf("metadata rows are not grouped: schema %q reopened", item.Schema)
			}
			seenSchemas[item.Schema] = true
			curSchema = item.Schema
			curTable = ""
			tableNode = -1
			if item.Schema == "" {
				schemaNode = tree.Root()
			} else {
				schemaNode = tree.Add(tree.Root(), item.Schema)
			}
		}
		if !started || item.Table != curTable || tableNode == -1 {
			key := item.Schema + "\x00" + item.Table
			if seenTables[key] {
				return nil, fmt.Errorf("metadata rows are not grouped: table %q reopened", item.Table)
			}
			seenTables[key] = true
			curTable = item.Table
			tableNode = tree.Add(schemaNode, item.Table)
		}
		started = true
		if item.Column != "" {
			tree.Add(tableNode, item.Column)
		}
	}
	return tree, nil
}
