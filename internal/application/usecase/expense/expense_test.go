package expense_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/application/usecase/expense"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/persistence"
	"github.com/trackify/backend/internal/integration/persistence/persistencetest"
)

type recordingCache struct {
	invalidated []valueobject.Scope
}

func (c *recordingCache) Get(context.Context, valueobject.Scope, string, string, any) (bool, error) {
	return false, nil
}

func (c *recordingCache) Set(context.Context, valueobject.Scope, string, string, any) error {
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context, scope valueobject.Scope) error {
	c.invalidated = append(c.invalidated, scope)
	return nil
}

// ExpenseLedgerTestSuite runs the ledger use cases over an in-memory store.
type ExpenseLedgerTestSuite struct {
	suite.Suite
	ctx          context.Context
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
	cache        *recordingCache

	create *expense.CreateExpenseUseCase
	update *expense.UpdateExpenseUseCase
	remove *expense.DeleteExpenseUseCase
	query  *expense.QueryExpensesUseCase

	ownerID uuid.UUID
	otherID uuid.UUID
	coffee  *entity.Category
	foreign *entity.Category
	spentAt time.Time
}

func TestExpenseLedger(t *testing.T) {
	suite.Run(t, new(ExpenseLedgerTestSuite))
}

// SetupTest runs before each test
func (s *ExpenseLedgerTestSuite) SetupTest() {
	db := persistencetest.NewDB(s.T())
	s.ctx = context.Background()
	s.categoryRepo = persistence.NewCategoryRepository(db)
	s.expenseRepo = persistence.NewExpenseRepository(db)
	s.cache = &recordingCache{}

	s.create = expense.NewCreateExpenseUseCase(s.expenseRepo, s.categoryRepo, s.cache)
	s.update = expense.NewUpdateExpenseUseCase(s.expenseRepo, s.categoryRepo, s.cache)
	s.remove = expense.NewDeleteExpenseUseCase(s.expenseRepo, s.cache)
	s.query = expense.NewQueryExpensesUseCase(s.expenseRepo, s.categoryRepo)

	s.ownerID = uuid.New()
	s.otherID = uuid.New()
	s.coffee = entity.NewCategory(s.ownerID, "Coffee", "☕")
	s.foreign = entity.NewCategory(s.otherID, "Books", "📚")
	require.NoError(s.T(), s.categoryRepo.Create(s.ctx, s.coffee))
	require.NoError(s.T(), s.categoryRepo.Create(s.ctx, s.foreign))
	s.spentAt = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
}

func (s *ExpenseLedgerTestSuite) fields(categoryID uuid.UUID, amount string) expense.ExpenseFields {
	return expense.ExpenseFields{
		CategoryID:  categoryID.String(),
		Amount:      decimal.RequireFromString(amount),
		PaymentMode: " Card ",
		SpentAt:     s.spentAt,
	}
}

func (s *ExpenseLedgerTestSuite) TestCreateStoresTheExpense() {
	note := "  Team coffee  "
	fields := s.fields(s.coffee.ID, "199.50")
	fields.Note = &note

	output, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: fields,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Coffee", output.CategoryName)
	assert.Equal(s.T(), s.ownerID, output.Expense.OwnerID)
	assert.Equal(s.T(), "Card", output.Expense.PaymentMode)
	require.NotNil(s.T(), output.Expense.Note)
	assert.Equal(s.T(), "Team coffee", *output.Expense.Note)
	assert.Equal(s.T(), []valueobject.Scope{valueobject.OwnerScope(s.ownerID)}, s.cache.invalidated)

	page, err := s.query.Execute(s.ctx, expense.QueryExpensesInput{Scope: valueobject.OwnerScope(s.ownerID)})
	require.NoError(s.T(), err)
	require.Len(s.T(), page.Items, 1)
	assert.Equal(s.T(), "199.50", page.Items[0].Expense.Amount.StringFixed(2))
	assert.Equal(s.T(), "Coffee", page.Items[0].CategoryName)
}

func (s *ExpenseLedgerTestSuite) TestCreateRejectsInvalidFields() {
	tests := []struct {
		name     string
		mutate   func(f *expense.ExpenseFields)
		expected domainerror.ExpenseErrorCode
	}{
		{
			name:     "zero amount",
			mutate:   func(f *expense.ExpenseFields) { f.Amount = decimal.Zero },
			expected: domainerror.ErrCodeInvalidAmount,
		},
		{
			name:     "amount above the maximum",
			mutate:   func(f *expense.ExpenseFields) { f.Amount = decimal.RequireFromString("1000000000") },
			expected: domainerror.ErrCodeInvalidAmount,
		},
		{
			name:     "long payment mode",
			mutate:   func(f *expense.ExpenseFields) { f.PaymentMode = strings.Repeat("p", expense.MaxPaymentModeLength+1) },
			expected: domainerror.ErrCodePaymentModeTooLong,
		},
		{
			name: "long note",
			mutate: func(f *expense.ExpenseFields) {
				note := strings.Repeat("n", expense.MaxNoteLength+1)
				f.Note = &note
			},
			expected: domainerror.ErrCodeNoteTooLong,
		},
		{
			name:     "missing spent-at",
			mutate:   func(f *expense.ExpenseFields) { f.SpentAt = time.Time{} },
			expected: domainerror.ErrCodeMissingSpentAt,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			fields := s.fields(s.coffee.ID, "10.00")
			tt.mutate(&fields)

			_, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
				Scope:         valueobject.OwnerScope(s.ownerID),
				ExpenseFields: fields,
			})

			var expErr *domainerror.ExpenseError
			require.ErrorAs(s.T(), err, &expErr)
			assert.Equal(s.T(), tt.expected, expErr.Code)
		})
	}

	count, err := s.expenseRepo.Count(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count)
}

func (s *ExpenseLedgerTestSuite) TestCreateRejectsInvalidCategoryReferences() {
	for name, categoryID := range map[string]string{
		"malformed": "not-a-uuid",
		"missing":   uuid.NewString(),
		"not owned": s.foreign.ID.String(),
	} {
		s.Run(name, func() {
			fields := s.fields(s.coffee.ID, "10.00")
			fields.CategoryID = categoryID

			_, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
				Scope:         valueobject.OwnerScope(s.ownerID),
				ExpenseFields: fields,
			})
			assert.ErrorIs(s.T(), err, domainerror.ErrInvalidReference)
		})
	}
}

func (s *ExpenseLedgerTestSuite) TestAdminWritesAreAttributedToTheCategoryOwner() {
	admin := valueobject.Scope{IsAdmin: true, OwnerID: uuid.New()}

	output, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
		Scope:         admin,
		ExpenseFields: s.fields(s.foreign.ID, "42.00"),
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.otherID, output.Expense.OwnerID)

	page, err := s.query.Execute(s.ctx, expense.QueryExpensesInput{Scope: valueobject.OwnerScope(s.otherID)})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), page.TotalCount)
}

func (s *ExpenseLedgerTestSuite) TestUpdateKeepsTheOwner() {
	created, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: s.fields(s.coffee.ID, "12.00"),
	})
	require.NoError(s.T(), err)
	id := created.Expense.ID.String()

	// Another owner sees nothing to update
	output, err := s.update.Execute(s.ctx, expense.UpdateExpenseInput{
		ExpenseID:     id,
		Scope:         valueobject.OwnerScope(s.otherID),
		ExpenseFields: s.fields(s.foreign.ID, "1.00"),
	})
	require.NoError(s.T(), err)
	assert.False(s.T(), output.Updated)

	output, err = s.update.Execute(s.ctx, expense.UpdateExpenseInput{
		ExpenseID:     id,
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: s.fields(s.coffee.ID, "15.25"),
	})
	require.NoError(s.T(), err)
	assert.True(s.T(), output.Updated)

	page, err := s.query.Execute(s.ctx, expense.QueryExpensesInput{Scope: valueobject.OwnerScope(s.ownerID)})
	require.NoError(s.T(), err)
	require.Len(s.T(), page.Items, 1)
	assert.Equal(s.T(), "15.25", page.Items[0].Expense.Amount.StringFixed(2))
	assert.Equal(s.T(), s.ownerID, page.Items[0].Expense.OwnerID)

	// Malformed ids are simply not found
	output, err = s.update.Execute(s.ctx, expense.UpdateExpenseInput{
		ExpenseID:     "bogus",
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: s.fields(s.coffee.ID, "15.25"),
	})
	require.NoError(s.T(), err)
	assert.False(s.T(), output.Updated)
}

func (s *ExpenseLedgerTestSuite) TestAdminMoveIntoForeignCategoryKeepsTheOwner() {
	created, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: s.fields(s.coffee.ID, "12.00"),
	})
	require.NoError(s.T(), err)

	admin := valueobject.Scope{IsAdmin: true, OwnerID: uuid.New()}
	output, err := s.update.Execute(s.ctx, expense.UpdateExpenseInput{
		ExpenseID:     created.Expense.ID.String(),
		Scope:         admin,
		ExpenseFields: s.fields(s.foreign.ID, "12.00"),
	})
	require.NoError(s.T(), err)
	assert.True(s.T(), output.Updated)

	page, err := s.query.Execute(s.ctx, expense.QueryExpensesInput{Scope: valueobject.OwnerScope(s.ownerID)})
	require.NoError(s.T(), err)
	require.Len(s.T(), page.Items, 1)
	assert.Equal(s.T(), s.ownerID, page.Items[0].Expense.OwnerID)
	assert.Equal(s.T(), s.foreign.ID, page.Items[0].Expense.CategoryID)
	assert.Equal(s.T(), "Books", page.Items[0].CategoryName)

	page, err = s.query.Execute(s.ctx, expense.QueryExpensesInput{Scope: valueobject.OwnerScope(s.otherID)})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), page.Items)
}

func (s *ExpenseLedgerTestSuite) TestDelete() {
	created, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: s.fields(s.coffee.ID, "12.00"),
	})
	require.NoError(s.T(), err)
	id := created.Expense.ID.String()

	output, err := s.remove.Execute(s.ctx, expense.DeleteExpenseInput{ExpenseID: id, Scope: valueobject.OwnerScope(s.otherID)})
	require.NoError(s.T(), err)
	assert.False(s.T(), output.Deleted)

	output, err = s.remove.Execute(s.ctx, expense.DeleteExpenseInput{ExpenseID: id, Scope: valueobject.OwnerScope(s.ownerID)})
	require.NoError(s.T(), err)
	assert.True(s.T(), output.Deleted)

	output, err = s.remove.Execute(s.ctx, expense.DeleteExpenseInput{ExpenseID: id, Scope: valueobject.OwnerScope(s.ownerID)})
	require.NoError(s.T(), err)
	assert.False(s.T(), output.Deleted)
}

func (s *ExpenseLedgerTestSuite) TestQueryResolvesOrphanedCategories() {
	_, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: s.fields(s.coffee.ID, "12.00"),
	})
	require.NoError(s.T(), err)

	deleted, err := s.categoryRepo.Delete(s.ctx, s.coffee.ID, valueobject.OwnerScope(s.ownerID))
	require.NoError(s.T(), err)
	require.True(s.T(), deleted)

	page, err := s.query.Execute(s.ctx, expense.QueryExpensesInput{Scope: valueobject.OwnerScope(s.ownerID)})
	require.NoError(s.T(), err)
	require.Len(s.T(), page.Items, 1)
	assert.Equal(s.T(), "", page.Items[0].CategoryName)
	assert.Equal(s.T(), s.coffee.ID, page.Items[0].Expense.CategoryID)
}

func (s *ExpenseLedgerTestSuite) TestQueryWithMalformedCategoryFilterIsEmpty() {
	_, err := s.create.Execute(s.ctx, expense.CreateExpenseInput{
		Scope:         valueobject.OwnerScope(s.ownerID),
		ExpenseFields: s.fields(s.coffee.ID, "12.00"),
	})
	require.NoError(s.T(), err)

	malformed := "coffee"
	page, err := s.query.Execute(s.ctx, expense.QueryExpensesInput{
		Scope:      valueobject.OwnerScope(s.ownerID),
		CategoryID: &malformed,
	})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), page.Items)
	assert.Equal(s.T(), int64(0), page.TotalCount)
}

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		expectedPage     int
		expectedPageSize int
	}{
		{name: "defaults", page: 0, pageSize: 0, expectedPage: 1, expectedPageSize: 10},
		{name: "kept", page: 3, pageSize: 25, expectedPage: 3, expectedPageSize: 25},
		{name: "negative page", page: -2, pageSize: 5, expectedPage: 1, expectedPageSize: 5},
		{name: "page size above the maximum", page: 2, pageSize: 101, expectedPage: 2, expectedPageSize: 10},
		{name: "maximum page size", page: 1, pageSize: 100, expectedPage: 1, expectedPageSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := expense.NormalizePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedPageSize, pageSize)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := map[string]adapter.ExpenseSort{
		"":             adapter.ExpenseSortSpentAtDesc,
		"AMOUNT_DESC":  adapter.ExpenseSortAmountDesc,
		" amount_asc ": adapter.ExpenseSortAmountAsc,
		"spentat_asc":  adapter.ExpenseSortSpentAtAsc,
		"newest":       adapter.ExpenseSortSpentAtDesc,
	}

	for key, expected := range tests {
		assert.Equal(t, expected, expense.ParseSort(key), "sort key %q", key)
	}
}
