package common

import (
	"fmt"
	"strings"

	"word_dict/dictionary"
)

/*
 * KeyFilter decides which source keys are loaded as words.
 * An entry ending with '*' matches every key that starts with the rest of it,
 * any other entry only matches the key itself.
 */
type KeyFilter struct {
	exact  *dictionary.WordDictionary
	prefix *dictionary.WordDictionary
	list   []string
}

func NewKeyFilter(filterList string) (*KeyFilter, error) {
	filter := &KeyFilter{
		exact:  dictionary.NewWordDictionary(),
		prefix: dictionary.NewWordDictionary(),
	}
	if len(filterList) == 0 {
		return filter, nil
	}

	for _, element := range strings.Split(filterList, FilterSplitter) {
		if element == "" {
			return nil, fmt.Errorf("invalid input filter list[%v]", filterList)
		}
		if strings.HasSuffix(element, "*") {
			filter.prefix.AddWord(strings.TrimSuffix(element, "*"))
		} else {
			filter.exact.AddWord(element)
		}
		filter.list = append(filter.list, element)
	}
	return filter, nil
}

// Empty is true when no entry was given, then every key passes.
func (p *KeyFilter) Empty() bool {
	return p == nil || len(p.list) == 0
}

func (p *KeyFilter) List() []string {
	if p == nil {
		return nil
	}
	return p.list
}

// Pass returns true if key should be kept.
func (p *KeyFilter) Pass(key string) bool {
	if p.Empty() {
		return true
	}
	return p.exact.Contains(key) || p.prefix.MatchPrefixOf(key)
}
