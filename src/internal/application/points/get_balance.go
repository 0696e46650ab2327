package points

import (
	"fmt"

	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// GetPointsBalanceQuery 查詢積分餘額的查詢
type GetPointsBalanceQuery struct {
	UserID string
}

// GetPointsBalanceResult 查詢積分餘額的結果
type GetPointsBalanceResult struct {
	UserID string
	Points int
}

// GetPointsBalanceUseCase 查詢積分餘額 Use Case
type GetPointsBalanceUseCase struct {
	ledger points.Ledger
}

// NewGetPointsBalanceUseCase 創建 Use Case 實例
func NewGetPointsBalanceUseCase(ledger points.Ledger) *GetPointsBalanceUseCase {
	return &GetPointsBalanceUseCase{
		ledger: ledger,
	}
}

// Execute 執行查詢積分餘額（auto-commit 讀取）
//
// 錯誤處理：
// - ErrInvalidUserID: UserID 格式無效
// - ErrUserNotFound: 使用者不存在
func (uc *GetPointsBalanceUseCase) Execute(query GetPointsBalanceQuery) (*GetPointsBalanceResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
// 獨立查詢時可傳入 nil
func (uc *GetPointsBalanceUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetPointsBalanceQuery,
) (*GetPointsBalanceResult, error) {
	userID, err := user.UserIDFromString(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	balance, err := uc.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read points balance: %w", err)
	}

	return &GetPointsBalanceResult{
		UserID: userID.String(),
		Points: balance.Value(),
	}, nil
}
