package rbtree

import "github.com/gostonefire/assoctables/internal/arena"

// node - Returns a pointer to the node at index i, valid until the next allocation
func (T *Tree[K, V]) node(i int) *node[K, V] {
	return T.nodes.At(i)
}

func (T *Tree[K, V]) colorOf(i int) color {
	return T.node(i).color
}

// setColor - Colors node i, the nil node is always black and is left alone
func (T *Tree[K, V]) setColor(i int, c color) {
	if i != arena.Null {
		T.node(i).color = c
	}
}

// insertFixup - Restores the red-black properties after z was inserted red
func (T *Tree[K, V]) insertFixup(z int) {
	for T.colorOf(T.node(z).parent) == red {
		p := T.node(z).parent
		g := T.node(p).parent

		if p == T.node(g).left {
			u := T.node(g).right
			if T.colorOf(u) == red {
				T.setColor(p, black)
				T.setColor(u, black)
				T.setColor(g, red)
				z = g
				continue
			}
			if z == T.node(p).right {
				z = p
				T.rotateLeft(z)
				p = T.node(z).parent
			}
			T.setColor(p, black)
			T.setColor(g, red)
			T.rotateRight(g)
		} else {
			u := T.node(g).left
			if T.colorOf(u) == red {
				T.setColor(p, black)
				T.setColor(u, black)
				T.setColor(g, red)
				z = g
				continue
			}
			if z == T.node(p).left {
				z = p
				T.rotateRight(z)
				p = T.node(z).parent
			}
			T.setColor(p, black)
			T.setColor(g, red)
			T.rotateLeft(g)
		}
	}

	T.setColor(T.root, black)
}

// delete - Unlinks node z from the tree and restores the red-black properties. The node itself is not released.
func (T *Tree[K, V]) delete(z int) {
	zn := T.node(z)
	removedColor := zn.color

	// x takes the place of the removed node and may be the nil node, so its parent is tracked separately
	var x, xParent int

	switch {
	case zn.left == arena.Null:
		x, xParent = zn.right, zn.parent
		T.transplant(z, zn.right)
	case zn.right == arena.Null:
		x, xParent = zn.left, zn.parent
		T.transplant(z, zn.left)
	default:
		y := T.minimum(zn.right)
		yn := T.node(y)
		removedColor = yn.color
		x = yn.right

		if yn.parent == z {
			xParent = y
		} else {
			xParent = yn.parent
			T.transplant(y, yn.right)
			yn.right = zn.right
			T.node(yn.right).parent = y
		}

		T.transplant(z, y)
		yn.left = zn.left
		T.node(yn.left).parent = y
		yn.color = zn.color
	}

	if removedColor == black {
		T.deleteFixup(x, xParent)
	}
}

// deleteFixup - Restores the black height after a black node was removed above x
func (T *Tree[K, V]) deleteFixup(x, xParent int) {
	for x != T.root && T.colorOf(x) == black {
		if x == T.node(xParent).left {
			w := T.node(xParent).right
			if T.colorOf(w) == red {
				T.setColor(w, black)
				T.setColor(xParent, red)
				T.rotateLeft(xParent)
				w = T.node(xParent).right
			}
			if T.colorOf(T.node(w).left) == black && T.colorOf(T.node(w).right) == black {
				T.setColor(w, red)
				x, xParent = xParent, T.node(xParent).parent
				continue
			}
			if T.colorOf(T.node(w).right) == black {
				T.setColor(T.node(w).left, black)
				T.setColor(w, red)
				T.rotateRight(w)
				w = T.node(xParent).right
			}
			T.setColor(w, T.colorOf(xParent))
			T.setColor(xParent, black)
			T.setColor(T.node(w).right, black)
			T.rotateLeft(xParent)
			x = T.root
		} else {
			w := T.node(xParent).left
			if T.colorOf(w) == red {
				T.setColor(w, black)
				T.setColor(xParent, red)
				T.rotateRight(xParent)
				w = T.node(xParent).left
			}
			if T.colorOf(T.node(w).left) == black && T.colorOf(T.node(w).right) == black {
				T.setColor(w, red)
				x, xParent = xParent, T.node(xParent).parent
				continue
			}
			if T.colorOf(T.node(w).left) == black {
				T.setColor(T.node(w).right, black)
				T.setColor(w, red)
				T.rotateLeft(w)
				w = T.node(xParent).left
			}
			T.setColor(w, T.colorOf(xParent))
			T.setColor(xParent, black)
			T.setColor(T.node(w).left, black)
			T.rotateRight(xParent)
			x = T.root
		}
	}

	T.setColor(x, black)
}

// transplant - Replaces the subtree rooted at u with the subtree rooted at v
func (T *Tree[K, V]) transplant(u, v int) {
	p := T.node(u).parent
	switch {
	case p == arena.Null:
		T.root = v
	case u == T.node(p).left:
		T.node(p).left = v
	default:
		T.node(p).right = v
	}

	if v != arena.Null {
		T.node(v).parent = p
	}
}

func (T *Tree[K, V]) rotateLeft(x int) {
	y := T.node(x).right
	T.node(x).right = T.node(y).left
	if l := T.node(y).left; l != arena.Null {
		T.node(l).parent = x
	}

	T.replaceChild(T.node(x).parent, x, y)

	T.node(y).left = x
	T.node(x).parent = y
}

func (T *Tree[K, V]) rotateRight(x int) {
	y := T.node(x).left
	T.node(x).left = T.node(y).right
	if r := T.node(y).right; r != arena.Null {
		T.node(r).parent = x
	}

	T.replaceChild(T.node(x).parent, x, y)

	T.node(y).right = x
	T.node(x).parent = y
}

// replaceChild - Links y into the place of child x of parent p
func (T *Tree[K, V]) replaceChild(p, x, y int) {
	T.node(y).parent = p
	switch {
	case p == arena.Null:
		T.root = y
	case x == T.node(p).left:
		T.node(p).left = y
	default:
		T.node(p).right = y
	}
}

// search - Returns the index of the node holding key, or arena.Null
func (T *Tree[K, V]) search(key K) int {
	i := T.root
	for i != arena.Null {
		n := T.node(i)
		switch {
		case key < n.key:
			i = n.left
		case key > n.key:
			i = n.right
		default:
			return i
		}
	}

	return arena.Null
}

func (T *Tree[K, V]) minimum(i int) int {
	if i == arena.Null {
		return i
	}
	for T.node(i).left != arena.Null {
		i = T.node(i).left
	}
	return i
}

// successor - Returns the in-order successor of i using parent links, or arena.Null after the last node
func (T *Tree[K, V]) successor(i int) int {
	if r := T.node(i).right; r != arena.Null {
		return T.minimum(r)
	}

	p := T.node(i).parent
	for p != arena.Null && i == T.node(p).right {
		i, p = p, T.node(p).parent
	}
	return p
}
