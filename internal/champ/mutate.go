package champ

import "github.com/arborlib/pcol/internal/owner"

func ensureMutableCollision[K comparable, V any](c *collisionNode[K, V], o *owner.Owner) *collisionNode[K, V] {
	if o.Owns(c.owner) {
		return c
	}
	keys := make([]K, len(c.keys), len(c.keys)+1)
	copy(keys, c.keys)
	values := make([]V, len(c.values), len(c.values)+1)
	copy(values, c.values)
	n := &collisionNode[K, V]{hash: c.hash, keys: keys, values: values}
	n.kind = kindCollision
	n.owner = o
	n.count = c.count
	return n
}

func ensureMutableBitmap[K comparable, V any](b *bitmapNode[K, V], o *owner.Owner) *bitmapNode[K, V] {
	if o.Owns(b.owner) {
		return b
	}
	keys := make([]K, len(b.keys), len(b.keys)+1)
	copy(keys, b.keys)
	values := make([]V, len(b.values), len(b.values)+1)
	copy(values, b.values)
	children := make([]*node[K, V], len(b.children), len(b.children)+1)
	copy(children, b.children)
	n := &bitmapNode[K, V]{dataMap: b.dataMap, nodeMap: b.nodeMap, keys: keys, values: values, children: children}
	n.kind = kindBitmap
	n.owner = o
	n.count = b.count
	return n
}

// freeze clears ownership recursively along the subtree owned by o,
// leaving nodes owned by another session (or already frozen) untouched
// (spec §4.1).
func freeze[K comparable, V any](n *node[K, V], o *owner.Owner) *node[K, V] {
	if n == nil || !o.Owns(n.owner) {
		return n
	}
	n.owner = nil
	switch n.kind {
	case kindBitmap:
		b := n.asBitmap()
		for i, c := range b.children {
			b.children[i] = freeze(c, o)
		}
	}
	return n
}
