package plan

import "fmt"

// ScanNode represents a scan over a table source.
type ScanNode struct {
	Table TableSource
}

func NewScanNode(table TableSource) *ScanNode {
	return &ScanNode{Table: table}
}

func (n *ScanNode) Children() []Node {
	return nil
}

func (n *ScanNode) String() string {
	return fmt.Sprintf("Scan: %s", n.Table.Name())
}
