package acl

// Resource names checked by route guards.
const (
	ResourceProfile    = "profile"
	ResourceAddress    = "address"
	ResourceRestaurant = "restaurant"
	ResourceMenu       = "menu"
	ResourceMenuItem   = "menuItem"
	ResourceItem       = "item"
	ResourceCart       = "cart"
	ResourcePayment    = "payment"
)

// Role names assignable to accounts.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultTable builds the application permission table. Admin inherits
// every user grant and adds role-wide write access to the catalog and
// profiles.
func DefaultTable() *Table {
	rules := []Rule{
		{Role: RoleUser, Action: ActionRead, Scope: ScopeOwn,
			Resources: []string{ResourceProfile, ResourceAddress, ResourceItem, ResourceCart}},
		{Role: RoleUser, Action: ActionUpdate, Scope: ScopeOwn,
			Resources: []string{ResourceProfile, ResourceAddress, ResourceItem, ResourceCart}},
		{Role: RoleUser, Action: ActionCreate, Scope: ScopeOwn,
			Resources: []string{ResourceAddress, ResourceItem, ResourceCart, ResourcePayment}},
		{Role: RoleUser, Action: ActionDelete, Scope: ScopeOwn,
			Resources: []string{ResourceAddress, ResourceItem, ResourceCart}},
		{Role: RoleUser, Action: ActionRead, Scope: ScopeAny,
			Resources: []string{ResourceRestaurant, ResourceMenu, ResourceMenuItem}},

		{Role: RoleAdmin, Action: ActionCreate, Scope: ScopeAny,
			Resources: []string{ResourceProfile, ResourceRestaurant, ResourceMenu, ResourceMenuItem}},
		{Role: RoleAdmin, Action: ActionUpdate, Scope: ScopeAny,
			Resources: []string{ResourceProfile, ResourceRestaurant, ResourceMenu, ResourceMenuItem}},
		{Role: RoleAdmin, Action: ActionDelete, Scope: ScopeAny,
			Resources: []string{ResourceProfile, ResourceRestaurant, ResourceMenu, ResourceMenuItem}},
	}

	return New(rules, map[string]string{RoleAdmin: RoleUser})
}
