package plan

import "strings"

// FormatIndent renders the plan as text, one node per line, each child
// indented two spaces below its parent. This is the quick-inspection
// rendering written alongside diagram documents.
func FormatIndent(root Node) string {
	var sb strings.Builder
	formatIndent(&sb, root, 0)
	return sb.String()
}

func formatIndent(sb *strings.Builder, n Node, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.String())
	sb.WriteByte('\n')
	for _, c := range n.Children() {
		formatIndent(sb, c, depth+1)
	}
}
