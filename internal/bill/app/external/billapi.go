package external

//go:generate mockgen -source billapi.go -destination mock/billapi.go -package mock

import (
	"context"

	"github.com/billup/billup-web/internal/bill/domain"
)

type (
	NewBill struct {
		Name        string
		Amount      float64
		DueDate     string
		Type        domain.Type
		ResidenceID int
		CompanyID   int
	}

	Payment struct {
		BillID      domain.ID
		UserID      int
		Amount      float64
		Provider    string
		MethodToken string
	}

	BillAPI interface {
		ListUserBills(ctx context.Context, userID int) ([]domain.Bill, error)
		ListAllBills(context.Context) ([]domain.Bill, error)
		CreateBill(context.Context, NewBill) (domain.Bill, error)
	}

	PaymentAPI interface {
		Pay(context.Context, Payment) error
	}
)
