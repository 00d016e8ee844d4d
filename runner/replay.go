package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"word_dict/dictionary"
)

const (
	OpConstruct = "WordDictionary"
	OpAddWord   = "addWord"
	OpSearch    = "search"
)

/*
 * Replay runs an operation list of the form
 *   [["WordDictionary","addWord","search"],[[],["bad"],[".ad"]]]
 * and writes the json list of results, null for the constructor and addWord.
 * Every "WordDictionary" starts over with an empty dictionary.
 */
func Replay(r io.Reader, w io.Writer, wildcard rune) error {
	var input []json.RawMessage
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return fmt.Errorf("decode operation list failed[%v]", err)
	}
	if len(input) != 2 {
		return fmt.Errorf("operation list should have 2 elements, got %d", len(input))
	}

	var ops []string
	if err := json.Unmarshal(input[0], &ops); err != nil {
		return fmt.Errorf("decode operations failed[%v]", err)
	}
	var args [][]string
	if err := json.Unmarshal(input[1], &args); err != nil {
		return fmt.Errorf("decode arguments failed[%v]", err)
	}
	if len(ops) != len(args) {
		return fmt.Errorf("%d operations but %d argument lists", len(ops), len(args))
	}

	var dict *dictionary.WordDictionary
	output := make([]interface{}, len(ops))
	for i, op := range ops {
		switch op {
		case OpConstruct:
			if len(args[i]) != 0 {
				return fmt.Errorf("operation %d[%v] takes no argument", i, op)
			}
			dict = dictionary.NewWordDictionaryWithWildcard(wildcard)
		case OpAddWord, OpSearch:
			if dict == nil {
				return fmt.Errorf("operation %d[%v] before %s", i, op, OpConstruct)
			}
			if len(args[i]) != 1 {
				return fmt.Errorf("operation %d[%v] takes 1 argument, got %d", i, op, len(args[i]))
			}
			if op == OpAddWord {
				dict.AddWord(args[i][0])
			} else {
				output[i] = dict.Search(args[i][0])
			}
		default:
			return fmt.Errorf("unknown operation %d[%v]", i, op)
		}
	}

	return json.NewEncoder(w).Encode(output)
}
