package services_test

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/pkg/payments"
)

// In-memory stores keyed by hex id. They mirror the Mongo-backed error
// mapping: missing documents surface as domain not-found errors.

type fakeAccounts struct {
	byID map[string]*models.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[string]*models.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, a *models.Account) error {
	for _, other := range f.byID {
		if other.Email == a.Email {
			return models.ErrDuplicate("email")
		}
		if other.PhoneNumber == a.PhoneNumber {
			return models.ErrDuplicate("phoneNumber")
		}
	}
	a.ID = primitive.NewObjectID()
	f.byID[a.ID.Hex()] = a
	return nil
}

func (f *fakeAccounts) FindByID(_ context.Context, id string) (*models.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound("account")
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range f.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound("account")
}

func (f *fakeAccounts) Update(_ context.Context, a *models.Account) error {
	if _, ok := f.byID[a.ID.Hex()]; !ok {
		return models.ErrNotFound("account")
	}
	cp := *a
	f.byID[a.ID.Hex()] = &cp
	return nil
}

func (f *fakeAccounts) SetToken(_ context.Context, id, tok string) error {
	a, ok := f.byID[id]
	if !ok {
		return models.ErrNotFound("account")
	}
	a.Token = tok
	return nil
}

func (f *fakeAccounts) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound("account")
	}
	delete(f.byID, id)
	return nil
}

type fakeCarts struct {
	byAccount map[string]*models.Cart
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{byAccount: map[string]*models.Cart{}}
}

func (f *fakeCarts) Create(_ context.Context, accountID string) (*models.Cart, error) {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, models.ErrNotFound("account")
	}
	cart := &models.Cart{
		ID:        primitive.NewObjectID(),
		AccountID: oid,
		Items:     []primitive.ObjectID{},
	}
	f.byAccount[accountID] = cart
	return cart, nil
}

func (f *fakeCarts) FindByAccount(_ context.Context, accountID string) (*models.Cart, error) {
	cart, ok := f.byAccount[accountID]
	if !ok {
		return nil, models.ErrCartNotFound()
	}
	cp := *cart
	cp.Items = append([]primitive.ObjectID(nil), cart.Items...)
	return &cp, nil
}

func (f *fakeCarts) PushItem(_ context.Context, accountID, itemID string) error {
	cart, ok := f.byAccount[accountID]
	if !ok {
		return models.ErrCartNotFound()
	}
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return models.ErrNotFound("item")
	}
	cart.Items = append(cart.Items, oid)
	return nil
}

func (f *fakeCarts) PullItem(_ context.Context, accountID, itemID string) error {
	cart, ok := f.byAccount[accountID]
	if !ok {
		return models.ErrCartNotFound()
	}
	kept := cart.Items[:0]
	for _, id := range cart.Items {
		if id.Hex() != itemID {
			kept = append(kept, id)
		}
	}
	cart.Items = kept
	return nil
}

func (f *fakeCarts) Delete(_ context.Context, accountID string) error {
	if _, ok := f.byAccount[accountID]; !ok {
		return models.ErrCartNotFound()
	}
	delete(f.byAccount, accountID)
	return nil
}

type fakeItems struct {
	byID map[string]*models.Item
}

func newFakeItems() *fakeItems {
	return &fakeItems{byID: map[string]*models.Item{}}
}

func (f *fakeItems) Create(_ context.Context, it *models.Item) error {
	it.ID = primitive.NewObjectID()
	cp := *it
	f.byID[it.ID.Hex()] = &cp
	return nil
}

func (f *fakeItems) FindByID(_ context.Context, id string) (*models.Item, error) {
	it, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound("item")
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItems) Update(_ context.Context, it *models.Item) error {
	if _, ok := f.byID[it.ID.Hex()]; !ok {
		return models.ErrNotFound("item")
	}
	cp := *it
	f.byID[it.ID.Hex()] = &cp
	return nil
}

func (f *fakeItems) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound("item")
	}
	delete(f.byID, id)
	return nil
}

type fakeMenuItems struct {
	byID map[string]*models.MenuItem
}

func newFakeMenuItems() *fakeMenuItems {
	return &fakeMenuItems{byID: map[string]*models.MenuItem{}}
}

func (f *fakeMenuItems) add(name string, price int64) *models.MenuItem {
	mi := &models.MenuItem{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
	}
	f.byID[mi.ID.Hex()] = mi
	return mi
}

func (f *fakeMenuItems) Create(_ context.Context, mi *models.MenuItem) error {
	mi.ID = primitive.NewObjectID()
	cp := *mi
	f.byID[mi.ID.Hex()] = &cp
	return nil
}

func (f *fakeMenuItems) FindByID(_ context.Context, id string) (*models.MenuItem, error) {
	mi, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound("menu item")
	}
	cp := *mi
	return &cp, nil
}

func (f *fakeMenuItems) ListByMenu(_ context.Context, menuID string) ([]models.MenuItem, error) {
	out := []models.MenuItem{}
	for _, mi := range f.byID {
		if mi.MenuID.Hex() == menuID {
			out = append(out, *mi)
		}
	}
	return out, nil
}

func (f *fakeMenuItems) Update(_ context.Context, mi *models.MenuItem) error {
	if _, ok := f.byID[mi.ID.Hex()]; !ok {
		return models.ErrNotFound("menu item")
	}
	cp := *mi
	f.byID[mi.ID.Hex()] = &cp
	return nil
}

func (f *fakeMenuItems) SetImageKey(_ context.Context, id, key string) error {
	mi, ok := f.byID[id]
	if !ok {
		return models.ErrNotFound("menu item")
	}
	mi.ImageKey = key
	return nil
}

func (f *fakeMenuItems) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound("menu item")
	}
	delete(f.byID, id)
	return nil
}

type fakeOrders struct {
	created []*models.Order
	failing bool
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order) error {
	if f.failing {
		return models.ErrUpstream(errors.New("insert failed"))
	}
	o.ID = primitive.NewObjectID()
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id string) (*models.Order, error) {
	for _, o := range f.created {
		if o.ID.Hex() == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound("order")
}

func (f *fakeOrders) ListByAccount(_ context.Context, accountID string) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.created {
		if o.AccountID.Hex() == accountID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakePayments struct {
	created []*models.Payment
	failing bool
}

func (f *fakePayments) Create(_ context.Context, p *models.Payment) error {
	if f.failing {
		return models.ErrUpstream(errors.New("insert failed"))
	}
	p.ID = primitive.NewObjectID()
	f.created = append(f.created, p)
	return nil
}

func (f *fakePayments) ListByAccount(_ context.Context, accountID string) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.created {
		if p.AccountID.Hex() == accountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeGateway struct {
	calls    int
	amounts  []int64
	currency string
	err      error
}

func (f *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (*payments.Intent, error) {
	f.calls++
	f.amounts = append(f.amounts, amount)
	f.currency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &payments.Intent{
		ID:           "pi_fake",
		ClientSecret: "pi_fake_secret",
		Amount:       amount,
		Currency:     currency,
	}, nil
}
