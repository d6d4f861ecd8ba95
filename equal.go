package formdoc

// Equal reports whether two nodes have the same model and the same fields in
// the same states, with equal values and equal children in the same order.
// Nil nodes are equal only to each other.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.model != b.model {
		return false
	}
	ae, be := a.snapshot(), b.snapshot()
	if len(ae) != len(be) {
		return false
	}
	for i := range ae {
		x, y := &ae[i], &be[i]
		if x.prop != y.prop || x.state != y.state {
			return false
		}
		if x.state == Nil {
			continue
		}
		if x.prop.card == Repeated {
			if len(x.items) != len(y.items) {
				return false
			}
			for j := range x.items {
				if !Equal(x.items[j], y.items[j]) {
					return false
				}
			}
			continue
		}
		if !x.val.Equal(y.val) {
			return false
		}
	}
	return true
}
