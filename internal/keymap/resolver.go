package keymap

// Resolver maps key strings to actions within one or more contexts.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help)
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key the first one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, ok := r.bindings[key]; !ok {
				r.bindings[key] = b.Action
			}
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// ForContexts builds a resolver over the bindings of contexts, in order.
func ForContexts(contexts ...string) *Resolver {
	var bindings []Binding
	for _, c := range contexts {
		bindings = append(bindings, ByContext(c)...)
	}
	return NewResolver(bindings)
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
