package selector

// HasParent returns true if any step of r contains a nesting selector.
func (r Relative) HasParent() bool {
	for _, step := range r {
		if step.Compound.HasParent() {
			return true
		}
	}
	return false
}

// Nest returns r as written inside a rule whose selector is parent.
//
// Each compound that contains "&" is merged with the last compound of
// parent and preceded by the rest of parent. If r has no "&", it is treated
// as if written "& r", so "a" nested in "div" becomes "div a" and "> a"
// becomes "div > a".
func (r Relative) Nest(parent Relative) Relative {
	if len(parent) == 0 {
		return r
	}

	if !r.HasParent() {
		other := make(Relative, 0, len(parent)+len(r))
		other = append(other, parent...)
		return append(other, r...)
	}

	head, last := parent[:len(parent)-1], parent[len(parent)-1]

	var other Relative
	for _, step := range r {
		if !step.Compound.HasParent() {
			other = append(other, step)
			continue
		}

		for j, ps := range head {
			if j == 0 {
				ps.Combinator = step.Combinator
			}
			other = append(other, ps)
		}

		comb := last.Combinator
		if len(head) == 0 {
			comb = step.Combinator
		}
		other = append(other, Step{Combinator: comb, Compound: step.Compound.Resolve(last.Compound)})
	}
	return other
}

// Nest returns the cross product of l nested in each selector of parent.
func (l List) Nest(parent List) List {
	if len(parent) == 0 {
		return l
	}

	other := make(List, 0, len(l)*len(parent))
	for _, p := range parent {
		for _, r := range l {
			other = append(other, r.Nest(p))
		}
	}
	return other
}
