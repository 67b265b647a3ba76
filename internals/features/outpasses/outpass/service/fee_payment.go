// file: internals/features/outpasses/outpass/service/fee_payment.go
package service

import (
	"fmt"
	"log"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"outpass_backend/internals/constants"
	"outpass_backend/internals/features/outpasses/outpass/model"
)

var SnapClient snap.Client

// InitMidtrans initialises the Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// CreateFeeSnapToken opens a gateway transaction for an outpass' fee dues.
// The order id is stamped on the outpass so the webhook can find it back.
func CreateFeeSnapToken(tx *gorm.DB, o *model.OutpassModel, payerName string) (string, error) {
	if o.OutpassFeeDue == nil || *o.OutpassFeeDue <= 0 {
		return "", fmt.Errorf("outpass has no fee due")
	}

	orderID := fmt.Sprintf("OUTPASS-FEE-%s-%d", o.OutpassID.String()[:8], time.Now().Unix())
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(*o.OutpassFeeDue),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	if err := tx.Model(o).
		Update("outpass_fee_order_id", orderID).Error; err != nil {
		return "", err
	}
	o.OutpassFeeOrderID = orderID
	return resp.Token, nil
}

// HandleFeeNotification is called for every gateway webhook post. Settlement
// funnels into the MarkFeePaid path: fee fields always update, status moves
// only out of FEE_PENDING, and the accountant ledger row is upserted, all in
// one transaction.
func HandleFeeNotification(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	switch status {
	case "capture", "settlement":
		// fallthrough to the paid path below
	case "expire", "cancel", "deny":
		log.Printf("[INFO] fee order %s ended as %s, nothing to apply", orderID, status)
		return nil
	default:
		log.Printf("[INFO] fee order %s status %s ignored", orderID, status)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var o model.OutpassModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("outpass_fee_order_id = ?", orderID).
			First(&o).Error; err != nil {
			return fmt.Errorf("outpass for fee order %s not found: %w", orderID, err)
		}

		next, err := Transition(OpMarkFeePaid, o.OutpassStatus)
		if err != nil {
			// terminal outpass: record nothing, the payment is a refund case
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"outpass_fee_paid":    true,
			"outpass_fee_paid_at": now,
			"outpass_status":      next,
		}
		if err := tx.Model(&o).Updates(updates).Error; err != nil {
			return err
		}

		if err := RecordApproval(tx, o.OutpassID, constants.RoleAccountant, nil,
			model.ApprovalApproved, "fee settled via payment gateway", &ApprovalSnapshot{FeeAmount: o.OutpassFeeDue}); err != nil {
			return err
		}

		ObserveTransition(OpMarkFeePaid, string(next))
		return nil
	})
}
