package layout

// Objects buckets layout nodes by kind
type Objects map[Kind][]Node

// Flatten walks the tree below root breadth-first and returns every node,
// root included, bucketed by kind. Each node is visited exactly once; the
// tree is trusted to be acyclic.
func Flatten(root Node) Objects {
	objs := make(Objects)
	if root == nil {
		return objs
	}

	queue := []Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		objs[node.Kind()] = append(objs[node.Kind()], node)
		queue = append(queue, node.Children()...)
	}

	return objs
}

// Count returns the total number of nodes across all kinds
func (o Objects) Count() int {
	n := 0
	for _, nodes := range o {
		n += len(nodes)
	}
	return n
}
