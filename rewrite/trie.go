package rewrite

import "fmt"

// trie is a byte-level prefix tree over UTF-8 encoded keys. Every terminal node
// carries the index of its key in the insertion order, which is used to find
// the output of a rule.
//
// Tries are built once and are read-only afterwards.
type trie struct {
	root trieNode
	size int // number of keys
}

type trieNode struct {
	next     map[byte]*trieNode
	terminal bool
	value    int
}

// insert adds a key with a value. If the key is already present, the trie is
// left unchanged and insert returns false.
func (t *trie) insert(key string, value int) bool {
	node := &t.root
	for i := 0; i < len(key); i++ {
		if node.next == nil {
			node.next = make(map[byte]*trieNode)
		}
		child, ok := node.next[key[i]]
		if !ok {
			child = &trieNode{}
			node.next[key[i]] = child
		}
		node = child
	}
	if node.terminal {
		return false
	}
	node.terminal, node.value = true, value
	t.size++
	return true
}

// longest finds the longest key which is a prefix of s[pos:]. It returns the
// byte length of the key and its value, or -1 if no key matches. The empty key
// is never stored, thus a match is always at least one byte long.
func (t *trie) longest(s string, pos int) (int, int) {
	n, value := -1, 0
	node := &t.root
	for i := pos; i < len(s) && node.next != nil; i++ {
		child, ok := node.next[s[i]]
		if !ok {
			break
		}
		node = child
		if node.terminal {
			n, value = i+1-pos, node.value
		}
	}
	return n, value
}

// lookup finds the value of a key.
func (t *trie) lookup(key string) (int, bool) {
	node := &t.root
	for i := 0; i < len(key); i++ {
		child, ok := node.next[key[i]]
		if !ok {
			return 0, false
		}
		node = child
	}
	return node.value, node.terminal
}

func (t *trie) String() string {
	return fmt.Sprintf("trie[%d]", t.size)
}
