package fancy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// RootTree returns a styled tree rooted at title
func RootTree(title string) *tree.Tree {
	return Tree().Root(RootStyle.Render(title))
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	return Tree().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(count),
		),
	)
}

// KeyValue renders a "key: value" leaf
func KeyValue(key, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		HeaderStyle.Render(key+":"),
		" ",
		ValueStyle.Render(value),
	)
}
