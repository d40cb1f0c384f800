// File: pkg/collate/tree.go
package collate

import (
	"path/filepath"
	"sort"
	"strings"
)

// treeNode is one directory or file in the rendered tree.
type treeNode struct {
	name     string
	isDir    bool
	children map[string]*treeNode
}

// RenderTree draws the included files as a box-drawing tree rooted at root.
// The tree is built from the final entry list rather than a second walk, so
// it can never disagree with the rest of the document.
func RenderTree(root string, entries []FileEntry) string {
	top := &treeNode{isDir: true, children: map[string]*treeNode{}}

	for _, entry := range entries {
		node := top
		parts := strings.Split(entry.Path, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{
					name:     part,
					isDir:    i < len(parts)-1,
					children: map[string]*treeNode{},
				}
				node.children[part] = child
			}
			node = child
		}
	}

	var builder strings.Builder
	builder.WriteString(filepath.ToSlash(root) + "/\n")
	writeTreeLevel(&builder, top, "")
	return builder.String()
}

// writeTreeLevel emits one directory level: directories first, then files,
// both case-insensitively sorted, with box-drawing connectors.
func writeTreeLevel(builder *strings.Builder, node *treeNode, prefix string) {
	children := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		ni := strings.ToLower(children[i].name)
		nj := strings.ToLower(children[j].name)
		if ni == nj {
			return children[i].name < children[j].name
		}
		return ni < nj
	})

	for i, child := range children {
		connector := "├── "
		extension := "│   "
		if i == len(children)-1 {
			connector = "└── "
			extension = "    "
		}

		if child.isDir {
			builder.WriteString(prefix + connector + child.name + "/\n")
			writeTreeLevel(builder, child, prefix+extension)
		} else {
			builder.WriteString(prefix + connector + child.name + "\n")
		}
	}
}
