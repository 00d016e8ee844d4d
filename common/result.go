package common

type SearchKind int

const (
	LiteralSearch SearchKind = iota
	WildcardSearch
	EndSearchKind
)

func (p SearchKind) String() string {
	switch p {
	case LiteralSearch:
		return "literal"
	case WildcardSearch:
		return "wildcard"
	default:
		return "unknown"
	}
}

type Result struct {
	Seq     int64 // position of the pattern in the input
	Pattern string
	Kind    SearchKind
	Matched bool
}
