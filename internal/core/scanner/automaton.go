package scanner

// automaton is an Aho-Corasick matcher over raw UTF-8 bytes.
// Patterns and text are compared byte for byte, so matching is case-sensitive
// and a multibyte phrase only matches a whole identical byte sequence
type automaton struct {
	nodes []node
}

type node struct {
	next [256]int32 // -1 when absent
	fail int32
	out  []int // pattern ids ending here, including via fail links
}

func newNode() node {
	var n node
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

func newAutomaton() *automaton {
	return &automaton{nodes: []node{newNode()}}
}

// add inserts pat under id; empty patterns are ignored
func (a *automaton) add(pat string, id int) {
	if pat == "" {
		return
	}
	s := int32(0)
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nx := a.nodes[s].next[b]
		if nx == -1 {
			nx = int32(len(a.nodes))
			a.nodes[s].next[b] = nx
			a.nodes = append(a.nodes, newNode())
		}
		s = nx
	}
	a.nodes[s].out = append(a.nodes[s].out, id)
}

// build computes fail links breadth first
func (a *automaton) build() {
	queue := make([]int32, 0, len(a.nodes))
	for b := 0; b < 256; b++ {
		if s := a.nodes[0].next[b]; s != -1 {
			a.nodes[s].fail = 0
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := 0; b < 256; b++ {
			s := a.nodes[r].next[b]
			if s == -1 {
				continue
			}
			queue = append(queue, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].next[b] == -1 {
				f = a.nodes[f].fail
			}
			if nx := a.nodes[f].next[b]; nx != -1 && nx != s {
				a.nodes[s].fail = nx
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].out = append(a.nodes[s].out, a.nodes[a.nodes[s].fail].out...)
		}
	}
}

// each calls fn for every pattern id found in text, once per occurrence
func (a *automaton) each(text string, fn func(id int)) {
	s := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for s != 0 && a.nodes[s].next[b] == -1 {
			s = a.nodes[s].fail
		}
		if nx := a.nodes[s].next[b]; nx != -1 {
			s = nx
		}
		for _, id := range a.nodes[s].out {
			fn(id)
		}
	}
}
