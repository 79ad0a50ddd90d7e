// File: pkg/consolidate/tree.go
package consolidate

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	isDir    bool
	children map[string]*treeNode
}

// RenderTree draws the given display paths ("./a/b.go") as a directory tree rooted at ".".
// Directories are listed before files, both alphabetically.
func RenderTree(paths []string) string {
	root := &treeNode{name: ".", isDir: true, children: map[string]*treeNode{}}
	for _, p := range paths {
		p = strings.TrimPrefix(p, "./")
		if p == "" || p == "." {
			continue
		}
		node := root
		parts := strings.Split(p, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, isDir: i < len(parts)-1, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			node = child
		}
	}

	var b strings.Builder
	b.WriteString(".\n")
	renderTreeRecursively(&b, root, "")
	return b.String()
}

func renderTreeRecursively(b *strings.Builder, node *treeNode, prefix string) {
	children := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		li, lj := strings.ToLower(children[i].name), strings.ToLower(children[j].name)
		if li != lj {
			return li < lj
		}
		return children[i].name < children[j].name
	})

	for i, child := range children {
		connector := "├── "
		extension := "│   "
		if i == len(children)-1 {
			connector = "└── "
			extension = "    "
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(child.name)
		if child.isDir {
			b.WriteString("/")
		}
		b.WriteString("\n")

		if child.isDir {
			renderTreeRecursively(b, child, prefix+extension)
		}
	}
}
