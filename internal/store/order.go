package store

import (
	"context"
	"fmt"

	"fashion-store/internal/database"
	"fashion-store/internal/model"
)

// CreateOrder 在單一交易內寫入訂單與其所有明細。
// 明細先蓋上新訂單的 order_id 與 pending 狀態再批次寫入，
// 任一步驟失敗即回滾，不留下部分狀態。
func CreateOrder(ctx context.Context, db database.DB, order *model.Order, details []model.OrderDetail) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("CreateOrder: begin: %w", err)
	}
	// commit 成功後的 Rollback 是 no-op
	defer tx.Rollback(ctx) //nolint:errcheck

	sql, args, err := psql.Insert("orders").
		Columns("user_id", "user_address_id", "status").
		Values(order.UserID, order.UserAddressID, order.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("CreateOrder: %w", err)
	}
	if err := tx.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt); err != nil {
		return fmt.Errorf("CreateOrder: insert order: %w", err)
	}

	if len(details) > 0 {
		ins := psql.Insert("order_details").
			Columns("order_id", "product_id", "quantity", "price", "status")
		for i := range details {
			details[i].OrderID = order.ID
			details[i].Status = model.OrderStatusPending
			ins = ins.Values(details[i].OrderID, details[i].ProductID, details[i].Quantity, details[i].Price, details[i].Status)
		}
		sql, args, err = ins.ToSql()
		if err != nil {
			return fmt.Errorf("CreateOrder: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("CreateOrder: insert details: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("CreateOrder: commit: %w", err)
	}
	return nil
}
