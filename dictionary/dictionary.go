package dictionary

const DefaultWildcard = '.'

/*
 * WordDictionary stores words in a prefix tree and answers lookups where the
 * wildcard marker stands for exactly one stored character.
 * It is not safe for concurrent use, callers must serialize AddWord and Search.
 */
type WordDictionary struct {
	root     *TrieNode
	wildcard rune
	count    int
}

func NewWordDictionary() *WordDictionary {
	return NewWordDictionaryWithWildcard(DefaultWildcard)
}

func NewWordDictionaryWithWildcard(marker rune) *WordDictionary {
	return &WordDictionary{root: newTrieNode(), wildcard: marker}
}

func (dict *WordDictionary) Wildcard() rune {
	return dict.wildcard
}

// Len returns the number of distinct words added so far.
func (dict *WordDictionary) Len() int {
	return dict.count
}

// AddWord inserts word. The empty word marks the root as terminal.
func (dict *WordDictionary) AddWord(word string) {
	node := dict.root
	for _, ch := range word {
		node = node.child(ch)
	}
	if !node.isEnd {
		node.isEnd = true
		dict.count++
	}
}

// Search reports whether some stored word matches pattern of the same length,
// each wildcard standing for exactly one existing character.
func (dict *WordDictionary) Search(pattern string) bool {
	return dict.match(dict.root, []rune(pattern), true)
}

// HasPrefix reports whether some stored word starts with pattern.
func (dict *WordDictionary) HasPrefix(pattern string) bool {
	return dict.match(dict.root, []rune(pattern), false)
}

// Contains is a literal lookup, the wildcard marker is an ordinary character here.
func (dict *WordDictionary) Contains(word string) bool {
	node := dict.root
	for _, ch := range word {
		next, ok := node.children[ch]
		if !ok {
			return false
		}
		node = next
	}
	return node.isEnd
}

// MatchPrefixOf reports whether some stored word is a prefix of key.
func (dict *WordDictionary) MatchPrefixOf(key string) bool {
	node := dict.root
	if node.isEnd {
		return true
	}
	for _, ch := range key {
		next, ok := node.children[ch]
		if !ok {
			return false
		}
		if next.isEnd {
			return true
		}
		node = next
	}
	return false
}

func (dict *WordDictionary) match(node *TrieNode, pattern []rune, whole bool) bool {
	for i, ch := range pattern {
		if ch == dict.wildcard {
			// the wildcard must consume one existing child, a node without
			// children never matches it even at the end of the pattern
			for _, next := range node.children {
				if dict.match(next, pattern[i+1:], whole) {
					return true
				}
			}
			return false
		}

		next, ok := node.children[ch]
		if !ok {
			return false
		}
		node = next
	}
	if !whole {
		return node.isEnd || len(node.children) > 0
	}
	return node.isEnd
}
