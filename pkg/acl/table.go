// Package acl implements role-based access control: an immutable
// role → (action × resource) → scope permission table built once at
// startup, and the Require middleware that gates handlers with it.
package acl

// Action is a CRUD verb checked against the permission table.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Scope restricts a grant to the principal's own resources or extends it
// role-wide.
type Scope string

const (
	ScopeOwn Scope = "own"
	ScopeAny Scope = "any"
)

// Grant is the result of a permission lookup.
type Grant struct {
	Granted bool
	Scope   Scope
}

// Rule is one declarative entry used to build a Table.
type Rule struct {
	Role      string
	Action    Action
	Scope     Scope
	Resources []string
}

type grantKey struct {
	resource string
	action   Action
}

type scopeSet struct {
	own bool
	any bool
}

// Table is the process-wide permission table. It is immutable after New
// and therefore safe for unsynchronized concurrent reads.
type Table struct {
	roles map[string]map[grantKey]scopeSet
}

// New builds a Table from rules. inherits maps a role to the role whose
// grants it absorbs (the union is computed here, once; lookups never
// chase the inheritance link again).
func New(rules []Rule, inherits map[string]string) *Table {
	t := &Table{roles: make(map[string]map[grantKey]scopeSet)}

	for _, r := range rules {
		grants, ok := t.roles[r.Role]
		if !ok {
			grants = make(map[grantKey]scopeSet)
			t.roles[r.Role] = grants
		}
		for _, res := range r.Resources {
			k := grantKey{resource: res, action: r.Action}
			s := grants[k]
			switch r.Scope {
			case ScopeOwn:
				s.own = true
			case ScopeAny:
				s.any = true
			}
			grants[k] = s
		}
	}

	for role, parent := range inherits {
		grants, ok := t.roles[role]
		if !ok {
			grants = make(map[grantKey]scopeSet)
			t.roles[role] = grants
		}
		for k, ps := range t.roles[parent] {
			s := grants[k]
			s.own = s.own || ps.own
			s.any = s.any || ps.any
			grants[k] = s
		}
	}

	return t
}

// Can resolves a permission lookup. "any" wins over "own" when both are
// granted. Unknown roles, actions, and resources fail closed.
func (t *Table) Can(role string, action Action, resource string) Grant {
	grants, ok := t.roles[role]
	if !ok {
		return Grant{}
	}
	s, ok := grants[grantKey{resource: resource, action: action}]
	if !ok {
		return Grant{}
	}
	if s.any {
		return Grant{Granted: true, Scope: ScopeAny}
	}
	if s.own {
		return Grant{Granted: true, Scope: ScopeOwn}
	}
	return Grant{}
}

// Roles returns the role names known to the table.
func (t *Table) Roles() []string {
	names := make([]string, 0, len(t.roles))
	for name := range t.roles {
		names = append(names, name)
	}
	return names
}
