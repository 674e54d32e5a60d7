package compendium

import (
	"sort"
	"strings"
)

// TreeNode is one node of an explicit directory tree: a directory owns its
// ordered children, a file is a leaf. This replaces nested-map conventions
// with structural traversal.
type TreeNode struct {
	Name     string
	IsDir    bool
	Children []*TreeNode
}

// BuildTree constructs a directory tree from slash-normalized relative file
// paths. Children are ordered directories first, then files, each group
// sorted by name.
func BuildTree(paths []string) *TreeNode {
	root := &TreeNode{Name: "", IsDir: true}
	index := map[*TreeNode]map[string]*TreeNode{root: {}}

	for _, p := range paths {
		p = strings.Trim(p, "/")
		if p == "" {
			continue
		}
		parts := strings.Split(p, "/")
		cur := root
		for i, part := range parts {
			isFile := i == len(parts)-1
			child := index[cur][part]
			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isFile}
				cur.Children = append(cur.Children, child)
				index[cur][part] = child
				if child.IsDir {
					index[child] = map[string]*TreeNode{}
				}
			}
			cur = child
		}
	}

	sortTree(root)
	return root
}

// Walk visits every node below n depth-first in child order, passing each
// node's slash-joined relative path.
func (n *TreeNode) Walk(fn func(path string, node *TreeNode)) {
	var visit func(node *TreeNode, prefix string)
	visit = func(node *TreeNode, prefix string) {
		for _, child := range node.Children {
			path := child.Name
			if prefix != "" {
				path = prefix + "/" + child.Name
			}
			fn(path, child)
			if child.IsDir {
				visit(child, path)
			}
		}
	}
	visit(n, "")
}

func sortTree(n *TreeNode) {
	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, child := range n.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}
