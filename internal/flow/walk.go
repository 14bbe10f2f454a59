package flow

// Walk calls fn for every distinct node reachable from n, operands before
// the nodes that use them. Shared subgraphs are visited once and nil operands are skipped.
func Walk[T any](n Node[T], fn func(Node[T])) {
	seen := make(map[Node[T]]bool)

	var visit func(Node[T])
	visit = func(node Node[T]) {
		if node == nil || seen[node] {
			return
		}
		seen[node] = true
		for _, op := range node.operands() {
			visit(op)
		}
		fn(node)
	}
	visit(n)
}

// Count returns the number of distinct nodes reachable from n.
func Count[T any](n Node[T]) int {
	count := 0
	Walk(n, func(Node[T]) { count++ })
	return count
}

// Depth returns the length of the longest path from n to a leaf. A leaf has depth 1.
func Depth[T any](n Node[T]) int {
	depth := make(map[Node[T]]int)
	Walk(n, func(node Node[T]) {
		d := 0
		for _, op := range node.operands() {
			d = max(d, depth[op])
		}
		depth[node] = d + 1
	})
	return depth[n]
}
