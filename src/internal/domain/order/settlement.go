package order

import "github.com/jackyeh168/gas_shop/src/internal/domain/points"

// SettlementKind 結算類型
type SettlementKind string

const (
	SettlementNone         SettlementKind = ""
	SettlementCreditEarned SettlementKind = "CREDIT_EARNED"
	SettlementRefundUsed   SettlementKind = "REFUND_USED"
)

// Settlement 狀態轉換後應執行的一次性積分結算
//
// Required 為 true 時，呼叫端必須在同一事務內：
//  1. OrderRepository.MarkPointsSettled（compare-and-swap）
//  2. 僅當 CAS 成功且 Amount > 0 時呼叫 points.Ledger.Credit
type Settlement struct {
	Kind   SettlementKind
	Amount points.PointsAmount
}

// Required 是否需要結算
func (s Settlement) Required() bool {
	return s.Kind != SettlementNone
}
