package dictionary

type TrieNode struct {
	children map[rune]*TrieNode
	isEnd    bool
}

func newTrieNode() *TrieNode {
	return &TrieNode{children: make(map[rune]*TrieNode), isEnd: false}
}

// child returns the child for ch, creating it when missing.
func (node *TrieNode) child(ch rune) *TrieNode {
	next, ok := node.children[ch]
	if !ok {
		next = newTrieNode()
		node.children[ch] = next
	}
	return next
}
