package procurement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
)

// testEnv arma el grafo completo de casos de uso sobre los fakes en memoria.
type testEnv struct {
	accounts    *memAccounts
	vendors     *memVendors
	orders      *memOrders
	quotes      *memQuotes
	assignments *memAssignments
	documents   *memDocuments
	tx          *memTx
	notifier    *recorderNotifier
	indexer     *recorderIndexer
	storage     *fakeStorage

	orderUC      *OrderUseCase
	quoteUC      *QuoteUseCase
	decideUC     *DecideQuoteUseCase
	assignmentUC *AssignmentUseCase
	vendorUC     *VendorUseCase
	documentUC   *DocumentUseCase
}

func newTestEnv() *testEnv {
	e := &testEnv{
		accounts:    newMemAccounts(),
		vendors:     newMemVendors(),
		orders:      newMemOrders(),
		quotes:      newMemQuotes(),
		assignments: newMemAssignments(),
		documents:   newMemDocuments(),
		notifier:    &recorderNotifier{},
		indexer:     &recorderIndexer{},
		storage:     &fakeStorage{},
	}
	e.tx = &memTx{quotes: e.quotes, orders: e.orders}
	e.orderUC = NewOrderUseCase(e.orders, e.vendors, e.assignments, e.indexer)
	e.quoteUC = NewQuoteUseCase(e.quotes, e.orders, e.accounts, e.notifier, e.indexer)
	e.decideUC = NewDecideQuoteUseCase(e.tx, e.quotes, e.orders, e.vendors, e.notifier, e.indexer)
	e.assignmentUC = NewAssignmentUseCase(e.assignments, e.orders, e.accounts)
	e.vendorUC = NewVendorUseCase(e.vendors, e.indexer)
	e.documentUC = NewDocumentUseCase(e.documents, e.orderUC, e.storage)
	return e
}

func (e *testEnv) addAccount(role, email string) *entity.Account {
	a := &entity.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      email,
		Role:      role,
		Status:    "active",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = e.accounts.Create(context.Background(), a)
	return a
}

func (e *testEnv) addVendorProfile(account *entity.Account, verified bool) *entity.VendorProfile {
	v := &entity.VendorProfile{
		ID:           uuid.New().String(),
		Name:         "Proveedor " + account.Email,
		ContactEmail: account.Email,
		PaymentTerms: "Net 30",
		Country:      "USA",
		IsVerified:   verified,
		AccountID:    account.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	_ = e.vendors.Create(context.Background(), v)
	return v
}

func (e *testEnv) addOrder(managerID, vendorID, status string) *entity.PurchaseOrder {
	o := &entity.PurchaseOrder{
		ID:        uuid.New().String(),
		ManagerID: managerID,
		VendorID:  vendorID,
		Materials: json.RawMessage(`[{"name":"cemento","qty":40}]`),
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = e.orders.Create(context.Background(), o)
	return o
}

func (e *testEnv) addQuote(orderID, vendorID, status string) *entity.Quote {
	q := &entity.Quote{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		VendorID:  vendorID,
		Price:     decimal.NewFromFloat(1500.50),
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = e.quotes.Create(context.Background(), q)
	return q
}

func (e *testEnv) addAssignment(orderID, staffID string) *entity.OrderAssignment {
	a := &entity.OrderAssignment{
		ID:         uuid.New().String(),
		OrderID:    orderID,
		StaffID:    staffID,
		AssignedAt: time.Now(),
	}
	_ = e.assignments.Create(context.Background(), a)
	return a
}

func callerOf(a *entity.Account, v *entity.VendorProfile) policy.Caller {
	return policy.Caller{Account: a, Vendor: v}
}
