package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeAtom NodeType = 128
	nodeTypeList NodeType = 256

	NodeTypeInt    = nodeTypeAtom | 1
	NodeTypeFloat  = nodeTypeAtom | 2
	NodeTypeSymbol = nodeTypeAtom | 4

	NodeTypeList = nodeTypeList | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeFloat:  "float",
	NodeTypeSymbol: "symbol",
	NodeTypeList:   "list",
}
