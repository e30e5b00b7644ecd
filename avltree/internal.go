package avltree

import "github.com/gostonefire/assoctables/internal/arena"

// node - Returns a pointer to the node at index i, valid until the next allocation
func (T *Tree[K, V]) node(i int) *node[K, V] {
	return T.nodes.At(i)
}

// insert - Inserts into the subtree rooted at i and returns the new root of that subtree
func (T *Tree[K, V]) insert(i, parent int, key K, value V) int {
	if i == arena.Null {
		T.size++
		T.modCount++
		return T.nodes.Alloc(node[K, V]{key: key, value: value, parent: parent, height: 1})
	}

	switch k := T.node(i).key; {
	case key < k:
		left := T.insert(T.node(i).left, i, key, value)
		T.node(i).left = left
	case key > k:
		right := T.insert(T.node(i).right, i, key, value)
		T.node(i).right = right
	default:
		T.node(i).value = value
		return i
	}

	return T.rebalance(i)
}

// erase - Removes key from the subtree rooted at i and returns the new root of that subtree.
// A node with two children takes over the key and value of its in-order successor, which is then removed from
// the right subtree.
func (T *Tree[K, V]) erase(i int, key K) (int, bool) {
	if i == arena.Null {
		return arena.Null, false
	}

	var erased bool
	n := T.node(i)
	switch {
	case key < n.key:
		n.left, erased = T.erase(n.left, key)
		T.setParent(n.left, i)
	case key > n.key:
		n.right, erased = T.erase(n.right, key)
		T.setParent(n.right, i)
	default:
		if n.left == arena.Null || n.right == arena.Null {
			child := n.left
			if child == arena.Null {
				child = n.right
			}
			T.setParent(child, n.parent)
			T.nodes.Release(i)
			T.size--
			T.modCount++
			return child, true
		}

		successor := T.node(T.leftmost(n.right))
		n.key, n.value = successor.key, successor.value
		n.right, erased = T.erase(n.right, n.key)
		T.setParent(n.right, i)
	}

	if !erased {
		return i, false
	}

	return T.rebalance(i), true
}

// rebalance - Updates the height of i and rotates if its balance factor is outside [-1, 1].
// It returns the new root of the subtree.
func (T *Tree[K, V]) rebalance(i int) int {
	T.updateHeight(i)

	n := T.node(i)
	switch bf := T.balanceFactor(i); {
	case bf > 1:
		if T.balanceFactor(n.left) < 0 {
			n.left = T.rotateLeft(n.left)
		}
		return T.rotateRight(i)
	case bf < -1:
		if T.balanceFactor(n.right) > 0 {
			n.right = T.rotateRight(n.right)
		}
		return T.rotateLeft(i)
	}

	return i
}

// rotateRight - Lifts the left child of y into its place and returns it
func (T *Tree[K, V]) rotateRight(y int) int {
	yn := T.node(y)
	x := yn.left
	xn := T.node(x)

	yn.left = xn.right
	T.setParent(xn.right, y)
	xn.right = y
	xn.parent = yn.parent
	yn.parent = x

	T.updateHeight(y)
	T.updateHeight(x)

	return x
}

// rotateLeft - Lifts the right child of x into its place and returns it
func (T *Tree[K, V]) rotateLeft(x int) int {
	xn := T.node(x)
	y := xn.right
	yn := T.node(y)

	xn.right = yn.left
	T.setParent(yn.left, x)
	yn.left = x
	yn.parent = xn.parent
	xn.parent = y

	T.updateHeight(x)
	T.updateHeight(y)

	return y
}

func (T *Tree[K, V]) updateHeight(i int) {
	n := T.node(i)
	n.height = 1 + max(T.node(n.left).height, T.node(n.right).height)
}

func (T *Tree[K, V]) balanceFactor(i int) int {
	if i == arena.Null {
		return 0
	}
	n := T.node(i)
	return T.node(n.left).height - T.node(n.right).height
}

// setParent - Sets the parent of child unless child is the null node
func (T *Tree[K, V]) setParent(child, parent int) {
	if child != arena.Null {
		T.node(child).parent = parent
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

func (T *Tree[K, V]) leftmost(i int) int {
	if i == arena.Null {
		return i
	}
	for T.node(i).left != arena.Null {
		i = T.node(i).left
	}
	return i
}

func (T *Tree[K, V]) rightmost(i int) int {
	if i == arena.Null {
		return i
	}
	for T.node(i).right != arena.Null {
		i = T.node(i).right
	}
	return i
}

// successor - Returns the in-order successor of i using parent links, or arena.Null after the last node
func (T *Tree[K, V]) successor(i int) int {
	if r := T.node(i).right; r != arena.Null {
		return T.leftmost(r)
	}

	p := T.node(i).parent
	for p != arena.Null && i == T.node(p).right {
		i, p = p, T.node(p).parent
	}
	return p
}

// predecessor - Returns the in-order predecessor of i using parent links, or arena.Null before the first node
func (T *Tree[K, V]) predecessor(i int) int {
	if l := T.node(i).left; l != arena.Null {
		return T.rightmost(l)
	}

	p := T.node(i).parent
	for p != arena.Null && i == T.node(p).left {
		i, p = p, T.node(p).parent
	}
	return p
}
