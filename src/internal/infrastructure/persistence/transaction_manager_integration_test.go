package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// TransactionManager Integration Tests
// ===========================

func newTestUser(t *testing.T, phone string) *user.User {
	t.Helper()
	p, err := user.NewPhoneNumber(phone)
	require.NoError(t, err)
	u, err := user.NewUser(p, "Nguyễn Văn A")
	require.NoError(t, err)
	return u
}

func TestRollbackOnError_DoesNotCommit(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	txManager := NewGORMTransactionManager(db)
	repo := NewUserRepository(db)
	u := newTestUser(t, "0901234567")

	// Act
	err := txManager.InTransaction(context.Background(), func(ctx shared.TransactionContext) error {
		require.NoError(t, repo.Save(ctx, u), "Save should succeed within transaction")
		return errors.New("simulated error - trigger rollback")
	})

	// Assert
	require.Error(t, err)
	assert.Equal(t, "simulated error - trigger rollback", err.Error())

	_, err = repo.FindByID(nil, u.UserID())
	assert.ErrorIs(t, err, user.ErrUserNotFound, "user should not exist after rollback")
}

func TestCommitOnSuccess_SavesData(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	txManager := NewGORMTransactionManager(db)
	repo := NewUserRepository(db)
	u := newTestUser(t, "0901234567")

	// Act
	err := txManager.InTransaction(context.Background(), func(ctx shared.TransactionContext) error {
		return repo.Save(ctx, u)
	})

	// Assert
	require.NoError(t, err)
	found, err := repo.FindByID(nil, u.UserID())
	require.NoError(t, err, "user should exist after commit")
	assert.Equal(t, u.PhoneNumber().String(), found.PhoneNumber().String())
}

func TestPanicRecovery_RollsBackAndRepanics(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	txManager := NewGORMTransactionManager(db)
	repo := NewUserRepository(db)
	u := newTestUser(t, "0901234567")

	// Act & Assert
	assert.Panics(t, func() {
		_ = txManager.InTransaction(context.Background(), func(ctx shared.TransactionContext) error {
			require.NoError(t, repo.Save(ctx, u))
			panic("simulated panic")
		})
	})

	_, err := repo.FindByID(nil, u.UserID())
	assert.ErrorIs(t, err, user.ErrUserNotFound, "user should not exist after panic rollback")
}

// 扣點成功後的後續步驟失敗，扣點也必須回滾
func TestMultipleOperations_AtomicRollback(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	txManager := NewGORMTransactionManager(db)
	ledger := NewPointLedger(db)
	userID := createTestUser(t, db, 1000)
	amount, _ := points.NewPointsAmount(600)

	// Act
	err := txManager.InTransaction(context.Background(), func(ctx shared.TransactionContext) error {
		require.NoError(t, ledger.TryReserve(ctx, userID, amount))
		return errors.New("order insert failed")
	})

	// Assert
	require.Error(t, err)
	assert.Equal(t, 1000, pointsOf(t, db, userID))
}

func TestInTransaction_CancelledContext_ReturnsError(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	txManager := NewGORMTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := txManager.InTransaction(ctx, func(shared.TransactionContext) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}
