package procurement

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// Fakes en memoria con la misma semántica que los repos de postgres:
// (nil, nil) cuando no hay fila y violaciones de unicidad traducidas a los
// errores de dominio.

type memAccounts struct {
	mu   sync.Mutex
	byID map[string]*entity.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: map[string]*entity.Account{}}
}

func (m *memAccounts) Create(_ context.Context, a *entity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.byID {
		if ex.Email == a.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAccounts) GetByID(_ context.Context, id string) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) Update(_ context.Context, a *entity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAccounts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memVendors struct {
	mu   sync.Mutex
	byID map[string]*entity.VendorProfile
}

func newMemVendors() *memVendors {
	return &memVendors{byID: map[string]*entity.VendorProfile{}}
}

func (m *memVendors) Create(_ context.Context, v *entity.VendorProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *v
	m.byID[v.ID] = &cp
	return nil
}

func (m *memVendors) GetByID(_ context.Context, id string) (*entity.VendorProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *memVendors) GetByAccountID(_ context.Context, accountID string) (*entity.VendorProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.byID {
		if v.AccountID == accountID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memVendors) Update(_ context.Context, v *entity.VendorProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *v
	m.byID[v.ID] = &cp
	return nil
}

func (m *memVendors) List(_ context.Context, onlyVerified bool, limit, _ int) ([]*entity.VendorProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.VendorProfile
	for _, v := range m.byID {
		if onlyVerified && !v.IsVerified {
			continue
		}
		cp := *v
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type memOrders struct {
	mu   sync.Mutex
	byID map[string]*entity.PurchaseOrder
}

func newMemOrders() *memOrders {
	return &memOrders{byID: map[string]*entity.PurchaseOrder{}}
}

func (m *memOrders) Create(_ context.Context, o *entity.PurchaseOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	m.byID[o.ID] = &cp
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) Update(_ context.Context, o *entity.PurchaseOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	m.byID[o.ID] = &cp
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func (m *memOrders) List(_ context.Context, scope policy.OrderScope, limit, _ int) ([]*entity.PurchaseOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if scope.Empty {
		return nil, nil
	}
	var out []*entity.PurchaseOrder
	for _, o := range m.byID {
		if scope.ManagerID != "" && o.ManagerID != scope.ManagerID {
			continue
		}
		if scope.VendorID != "" && o.VendorID != scope.VendorID {
			continue
		}
		// el filtro por StaffID necesita el join con asignaciones; los tests
		// de listado staff pasan por memAssignments aparte
		cp := *o
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memOrders) snapshot() map[string]entity.PurchaseOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := map[string]entity.PurchaseOrder{}
	for id, o := range m.byID {
		snap[id] = *o
	}
	return snap
}

func (m *memOrders) restore(snap map[string]entity.PurchaseOrder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID = map[string]*entity.PurchaseOrder{}
	for id, o := range snap {
		cp := o
		m.byID[id] = &cp
	}
}

type memQuotes struct {
	mu   sync.Mutex
	byID map[string]*entity.Quote
}

func newMemQuotes() *memQuotes {
	return &memQuotes{byID: map[string]*entity.Quote{}}
}

func (m *memQuotes) Create(_ context.Context, q *entity.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.byID {
		if ex.OrderID == q.OrderID && ex.VendorID == q.VendorID {
			return domain.ErrDuplicateQuote
		}
	}
	cp := *q
	m.byID[q.ID] = &cp
	return nil
}

func (m *memQuotes) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (m *memQuotes) GetByOrderAndVendor(_ context.Context, orderID, vendorID string) (*entity.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.byID {
		if q.OrderID == orderID && q.VendorID == vendorID {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memQuotes) Update(_ context.Context, q *entity.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *q
	m.byID[q.ID] = &cp
	return nil
}

func (m *memQuotes) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func (m *memQuotes) List(_ context.Context, scope policy.QuoteScope, limit, _ int) ([]*entity.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if scope.Empty {
		return nil, nil
	}
	var out []*entity.Quote
	for _, q := range m.byID {
		if scope.VendorID != "" && q.VendorID != scope.VendorID {
			continue
		}
		cp := *q
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memQuotes) ListByOrder(_ context.Context, orderID string) ([]*entity.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Quote
	for _, q := range m.byID {
		if q.OrderID == orderID {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memQuotes) snapshot() map[string]entity.Quote {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := map[string]entity.Quote{}
	for id, q := range m.byID {
		snap[id] = *q
	}
	return snap
}

func (m *memQuotes) restore(snap map[string]entity.Quote) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID = map[string]*entity.Quote{}
	for id, q := range snap {
		cp := q
		m.byID[id] = &cp
	}
}

type memAssignments struct {
	mu   sync.Mutex
	byID map[string]*entity.OrderAssignment
}

func newMemAssignments() *memAssignments {
	return &memAssignments{byID: map[string]*entity.OrderAssignment{}}
}

func (m *memAssignments) Create(_ context.Context, a *entity.OrderAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.byID {
		if ex.OrderID == a.OrderID && ex.StaffID == a.StaffID {
			return domain.ErrDuplicateAssignment
		}
	}
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAssignments) GetByID(_ context.Context, id string) (*entity.OrderAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memAssignments) Exists(_ context.Context, orderID, staffID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.OrderID == orderID && a.StaffID == staffID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAssignments) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func (m *memAssignments) List(_ context.Context, scope policy.AssignmentScope, limit, _ int) ([]*entity.OrderAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if scope.Empty {
		return nil, nil
	}
	var out []*entity.OrderAssignment
	for _, a := range m.byID {
		if scope.StaffID != "" && a.StaffID != scope.StaffID {
			continue
		}
		cp := *a
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type memDocuments struct {
	mu   sync.Mutex
	byID map[string]*entity.Document
}

func newMemDocuments() *memDocuments {
	return &memDocuments{byID: map[string]*entity.Document{}}
}

func (m *memDocuments) Create(_ context.Context, d *entity.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.byID[d.ID] = &cp
	return nil
}

func (m *memDocuments) ListByOrder(_ context.Context, orderID string) ([]*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Document
	for _, d := range m.byID {
		if d.OrderID == orderID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memTx ejecuta el callback sobre los repos en memoria con semántica de
// rollback: si falla, restaura el snapshot previo. failOrders reemplaza el
// repo de órdenes dentro de la tx para inyectar fallos de escritura.
type memTx struct {
	quotes     *memQuotes
	orders     *memOrders
	failOrders repository.OrderRepository
}

func (t *memTx) RunQuoteDecision(ctx context.Context, fn func(repository.QuoteRepository, repository.OrderRepository) error) error {
	qSnap := t.quotes.snapshot()
	oSnap := t.orders.snapshot()
	var orders repository.OrderRepository = t.orders
	if t.failOrders != nil {
		orders = t.failOrders
	}
	if err := fn(t.quotes, orders); err != nil {
		t.quotes.restore(qSnap)
		t.orders.restore(oSnap)
		return err
	}
	return nil
}

var errStorageDown = errors.New("disco lleno")

// failingOrders delega en el repo real pero falla todo Update.
type failingOrders struct {
	*memOrders
}

func (f failingOrders) Update(context.Context, *entity.PurchaseOrder) error {
	return errStorageDown
}

type recordedMail struct {
	To      string
	OrderID string
	Detail  string
}

// recorderNotifier captura las notificaciones enviadas.
type recorderNotifier struct {
	mu        sync.Mutex
	Submitted []recordedMail
	Decided   []recordedMail
}

func (r *recorderNotifier) QuoteSubmitted(_ context.Context, managerEmail, orderID, price string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Submitted = append(r.Submitted, recordedMail{To: managerEmail, OrderID: orderID, Detail: price})
}

func (r *recorderNotifier) QuoteDecided(_ context.Context, vendorEmail, orderID, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Decided = append(r.Decided, recordedMail{To: vendorEmail, OrderID: orderID, Detail: status})
}

// recorderIndexer captura los objectIDs indexados y removidos.
type recorderIndexer struct {
	mu      sync.Mutex
	Indexed []string
	Removed []string
}

func (r *recorderIndexer) IndexVendor(_ context.Context, v *entity.VendorProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Indexed = append(r.Indexed, "vendor_"+v.ID)
}

func (r *recorderIndexer) IndexOrder(_ context.Context, o *entity.PurchaseOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Indexed = append(r.Indexed, "order_"+o.ID)
}

func (r *recorderIndexer) IndexQuote(_ context.Context, q *entity.Quote) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Indexed = append(r.Indexed, "quote_"+q.ID)
}

func (r *recorderIndexer) Remove(_ context.Context, objectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Removed = append(r.Removed, objectID)
}

// fakeStorage implementa ObjectStorage en memoria.
type fakeStorage struct {
	fail bool
	last string
}

func (f *fakeStorage) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, string, error) {
	if f.fail {
		return "", "", errStorageDown
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", "", err
	}
	f.last = objectName
	return "https://storage.googleapis.com/bucket/" + objectName, objectName, nil
}
