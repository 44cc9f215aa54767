package cache

import (
	"strings"
	"sync"
)

const DefaultKeySeparator string = "/"

// wildcard matches any single key segment in prefix operations.
const wildcard = "*"

var _ Cache[interface{}] = &PrefixCache[interface{}]{}

// PrefixCache is a Cache organized as a trie over key segments, so
// whole families of entries ("crypt/*", "queens/8/...") can be scanned
// or invalidated in one call. Segment "*" acts as a wildcard in
// DeleteByPrefix and PrefixScan.
type PrefixCache[I interface{}] struct {
	separator string
	root      *node[I]
	mu        sync.RWMutex
}

type node[I interface{}] struct {
	key      Key
	value    *I
	children map[string]*node[I]
}

func newNode[I interface{}](key Key) *node[I] {
	return &node[I]{
		key:      key,
		children: map[string]*node[I]{},
	}
}

func (n *node[I]) leaf() bool {
	return len(n.children) == 0 && n.value == nil
}

func NewPrefixCache[I interface{}]() *PrefixCache[I] {
	return &PrefixCache[I]{
		separator: DefaultKeySeparator,
		root:      newNode[I](""),
	}
}

func (p *PrefixCache[I]) Get(key Key) (I, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := p.root
	for _, segment := range p.split(key) {
		child, ok := n.children[segment]
		if !ok {
			return *new(I), false
		}
		n = child
	}
	if n.value == nil {
		return *new(I), false
	}
	return *n.value, true
}

func (p *PrefixCache[I]) Set(key Key, value I) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.root
	var path []string
	for _, segment := range p.split(key) {
		path = append(path, segment)
		child, ok := n.children[segment]
		if !ok {
			child = newNode[I](Key(strings.Join(path, p.separator)))
			n.children[segment] = child
		}
		n = child
	}
	n.value = &value
}

func (p *PrefixCache[I]) Delete(key Key) {
	p.mu.Lock()
	defer p.mu.Unlock()

	segments := p.split(key)
	path := make([]*node[I], 0, len(segments)+1)
	n := p.root
	path = append(path, n)
	for _, segment := range segments {
		child, ok := n.children[segment]
		if !ok {
			return
		}
		n = child
		path = append(path, n)
	}
	n.value = nil

	// unlink nodes that hold nothing anymore, bottom up
	for i := len(path) - 2; i >= 0; i-- {
		child := path[i+1]
		if !child.leaf() {
			break
		}
		delete(path[i].children, segments[i])
	}
}

// DeleteByPrefix removes every entry below the given prefix. The
// prefix may contain wildcard segments.
func (p *PrefixCache[I]) DeleteByPrefix(prefix Key) {
	p.mu.Lock()
	defer p.mu.Unlock()
	deleteBelow(p.root, p.split(prefix))
}

func deleteBelow[I interface{}](n *node[I], segments []string) {
	if len(segments) == 0 {
		n.children = map[string]*node[I]{}
		n.value = nil
		return
	}
	for segment, child := range n.children {
		if segments[0] != wildcard && segments[0] != segment {
			continue
		}
		deleteBelow(child, segments[1:])
		if child.leaf() {
			delete(n.children, segment)
		}
	}
}

func (p *PrefixCache[I]) Iterate(fn func(key Key, value I) error) error {
	return p.PrefixScan("", fn)
}

// PrefixScan visits every entry below the given prefix. The prefix may
// contain wildcard segments; the empty prefix scans the whole cache.
func (p *PrefixCache[I]) PrefixScan(prefix string, fn func(key Key, value I) error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var segments []string
	if prefix != "" {
		segments = strings.Split(prefix, p.separator)
	}
	return scanBelow(p.root, segments, fn)
}

func scanBelow[I interface{}](n *node[I], segments []string, fn func(key Key, value I) error) error {
	if len(segments) == 0 {
		if n.value != nil {
			if err := fn(n.key, *n.value); err != nil {
				return err
			}
		}
		for _, child := range n.children {
			if err := scanBelow(child, nil, fn); err != nil {
				return err
			}
		}
		return nil
	}
	for segment, child := range n.children {
		if segments[0] != wildcard && segments[0] != segment {
			continue
		}
		if err := scanBelow(child, segments[1:], fn); err != nil {
			return err
		}
	}
	return nil
}

func (p *PrefixCache[I]) split(key Key) []string {
	return strings.Split(string(key), p.separator)
}
