package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dscommerce/commerce-api/internal/core/domain"
	"github.com/dscommerce/commerce-api/internal/core/ports"
)

type stubOrderRepo struct {
	byID map[int64]*domain.Order
	seq  int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[int64]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.seq++
	o.ID = r.seq
	clone := *o
	r.byID[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

type stubUserRepo struct {
	byID map[int64]*domain.User
	seq  int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	u.ID = r.seq
	clone := *u
	r.byID[u.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// seededUserRepo returns a user repo holding the two well-known accounts:
// user 1 is the client Maria Brown, user 2 the admin Alex Green.
func seededUserRepo(t *testing.T) *stubUserRepo {
	t.Helper()
	users := newStubUserRepo()
	for _, u := range []domain.User{
		{Name: "Maria Brown", Email: "maria@gmail.com", Roles: []string{domain.RoleClient}},
		{Name: "Alex Green", Email: "alex@gmail.com", Roles: []string{domain.RoleAdmin}},
	} {
		if _, err := users.Create(context.Background(), &u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return users
}

func newOrderService(orders *stubOrderRepo, products *stubProductRepo, users *stubUserRepo) *OrderService {
	return NewOrderService(orders, products, users, discardLogger)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestOrderService_Create_Success(t *testing.T) {
	products := newStubProductRepo()
	tera := seedProduct(t, products, "PC Gamer Tera", 1950.0)
	hera := seedProduct(t, products, "PC Gamer Hera", 2250.0)
	orders := newStubOrderRepo()
	svc := newOrderService(orders, products, seededUserRepo(t))

	detail, err := svc.Create(context.Background(), clientPrincipal(), []ports.OrderItemInput{
		{ProductID: tera.ID, Quantity: 1},
		{ProductID: hera.ID, Quantity: 4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.ID == 0 {
		t.Error("expected assigned order id")
	}
	if detail.Status != string(domain.StatusInitial) {
		t.Errorf("expected initial status, got %q", detail.Status)
	}
	if detail.Client.ID != 1 || detail.Client.Name != "Maria Brown" {
		t.Errorf("order not owned by the caller: %+v", detail.Client)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(detail.Items))
	}
	if detail.Items[0].Name != "PC Gamer Tera" || detail.Items[0].UnitPrice != 1950.0 {
		t.Errorf("item 0 missing price snapshot: %+v", detail.Items[0])
	}
	if detail.Items[1].SubTotal != 4*2250.0 {
		t.Errorf("unexpected subtotal: %v", detail.Items[1].SubTotal)
	}
	if want := 1950.0 + 4*2250.0; detail.Total != want {
		t.Errorf("expected total %v, got %v", want, detail.Total)
	}
	if detail.OrderedAt.IsZero() || detail.OrderedAt.After(time.Now().Add(time.Second)) {
		t.Errorf("implausible order timestamp: %v", detail.OrderedAt)
	}
}

func TestOrderService_Create_EmptyItems(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(), newStubProductRepo(), seededUserRepo(t))

	_, err := svc.Create(context.Background(), clientPrincipal(), nil)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %+v", ve.Violations)
	}
	if ve.Violations[0].FieldName != "items" || ve.Violations[0].Message != "There must be at least one item" {
		t.Fatalf("unexpected violation: %+v", ve.Violations[0])
	}
}

func TestOrderService_Create_ZeroQuantityRejected(t *testing.T) {
	products := newStubProductRepo()
	tera := seedProduct(t, products, "PC Gamer Tera", 1950.0)
	svc := newOrderService(newStubOrderRepo(), products, seededUserRepo(t))

	_, err := svc.Create(context.Background(), clientPrincipal(), []ports.OrderItemInput{
		{ProductID: tera.ID, Quantity: 0},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Violations[0].Message != "Item quantity must be a positive value" {
		t.Fatalf("unexpected violation: %+v", ve.Violations[0])
	}
}

func TestOrderService_Create_AdminForbidden(t *testing.T) {
	products := newStubProductRepo()
	tera := seedProduct(t, products, "PC Gamer Tera", 1950.0)
	orders := newStubOrderRepo()
	svc := newOrderService(orders, products, seededUserRepo(t))

	_, err := svc.Create(context.Background(), adminPrincipal(), []ports.OrderItemInput{
		{ProductID: tera.ID, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(orders.byID) != 0 {
		t.Error("forbidden create must not persist")
	}
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(), newStubProductRepo(), seededUserRepo(t))

	_, err := svc.Create(context.Background(), clientPrincipal(), []ports.OrderItemInput{
		{ProductID: 100, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestOrderService_Create_NoPrincipalUnauthorized(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(), newStubProductRepo(), seededUserRepo(t))

	_, err := svc.Create(context.Background(), nil, []ports.OrderItemInput{{ProductID: 1, Quantity: 1}})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// FindByID
// ---------------------------------------------------------------------------

// seedOrder stores an order owned by the given user, referencing product 1.
func seedOrder(t *testing.T, orders *stubOrderRepo, userID int64) *domain.Order {
	t.Helper()
	o := &domain.Order{
		UserID:    userID,
		OrderedAt: time.Now().UTC(),
		Status:    domain.StatusInitial,
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "The Lord of the Rings", UnitPrice: 90.5, Quantity: 2},
		},
	}
	if err := orders.Create(context.Background(), o); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func TestOrderService_FindByID_OwnerReadsOwnOrder(t *testing.T) {
	orders := newStubOrderRepo()
	existing := seedOrder(t, orders, 1)
	svc := newOrderService(orders, newStubProductRepo(), seededUserRepo(t))

	detail, err := svc.FindByID(context.Background(), clientPrincipal(), existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Client.ID != 1 || detail.Client.Name != "Maria Brown" {
		t.Errorf("owner not resolved: %+v", detail.Client)
	}
	if detail.Total != 2*90.5 {
		t.Errorf("unexpected total: %v", detail.Total)
	}
}

func TestOrderService_FindByID_AdminReadsAnyOrder(t *testing.T) {
	orders := newStubOrderRepo()
	existing := seedOrder(t, orders, 1)
	svc := newOrderService(orders, newStubProductRepo(), seededUserRepo(t))

	detail, err := svc.FindByID(context.Background(), adminPrincipal(), existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Client.Name != "Maria Brown" {
		t.Errorf("expected the owner's name, got %q", detail.Client.Name)
	}
}

func TestOrderService_FindByID_ForeignOrderForbidden(t *testing.T) {
	orders := newStubOrderRepo()
	existing := seedOrder(t, orders, 42)
	svc := newOrderService(orders, newStubProductRepo(), seededUserRepo(t))

	_, err := svc.FindByID(context.Background(), clientPrincipal(), existing.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOrderService_FindByID_UnknownIDNotFoundForEveryRole(t *testing.T) {
	svc := newOrderService(newStubOrderRepo(), newStubProductRepo(), seededUserRepo(t))

	if _, err := svc.FindByID(context.Background(), adminPrincipal(), 100); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("admin: expected ErrOrderNotFound, got %v", err)
	}
	if _, err := svc.FindByID(context.Background(), clientPrincipal(), 100); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("client: expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_FindByID_NoPrincipalUnauthorized(t *testing.T) {
	orders := newStubOrderRepo()
	existing := seedOrder(t, orders, 1)
	svc := newOrderService(orders, newStubProductRepo(), seededUserRepo(t))

	_, err := svc.FindByID(context.Background(), nil, existing.ID)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestOrderService_FindByID_OwnerLookupFailureDegrades(t *testing.T) {
	orders := newStubOrderRepo()
	existing := seedOrder(t, orders, 1)
	// Empty user repo: the owner lookup fails but the read still succeeds.
	svc := newOrderService(orders, newStubProductRepo(), newStubUserRepo())

	detail, err := svc.FindByID(context.Background(), adminPrincipal(), existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Client.ID != 1 || detail.Client.Name != "" {
		t.Errorf("expected id-only client view, got %+v", detail.Client)
	}
}
