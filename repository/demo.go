package repository

import (
	"backoffice-service/entity"
)

func DemoPurchaseOrders() []entity.PurchaseOrder {
	return []entity.PurchaseOrder{
		{
			Id:     "po-001",
			Vendor: "Tech Solutions Inc",
			Amount: 15750.00,
			Status: entity.PoStatusPending,
			Date:   "2024-01-15",
			Items:  []string{"Software Licenses", "Hardware Components"},
		},
		{
			Id:     "po-002",
			Vendor: "Office Supplies Co",
			Amount: 2340.50,
			Status: entity.PoStatusApproved,
			Date:   "2024-01-14",
			Items:  []string{"Office Furniture", "Stationery"},
		},
	}
}

func DemoTransactions() []entity.Transaction {
	return []entity.Transaction{
		{
			Id:          "txn-001",
			Type:        entity.TransactionIncome,
			Amount:      25000.00,
			Description: "Client payment - Project Alpha",
			Date:        "2024-01-15",
			Category:    "Revenue",
			Account:     "Business Checking",
		},
		{
			Id:          "txn-002",
			Type:        entity.TransactionExpense,
			Amount:      1250.00,
			Description: "Office rent - January",
			Date:        "2024-01-01",
			Category:    "Rent",
			Account:     "Business Checking",
		},
		{
			Id:          "txn-003",
			Type:        entity.TransactionExpense,
			Amount:      340.75,
			Description: "Office supplies",
			Date:        "2024-01-10",
			Category:    "Supplies",
			Account:     "Business Credit Card",
		},
	}
}
