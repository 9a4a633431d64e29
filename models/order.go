package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	UserID            *uint            `gorm:"index" json:"user_id"`
	User              *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ShippingAddressID *uint            `json:"shipping_address_id"`
	ShippingAddress   *ShippingAddress `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`
	Amount            decimal.Decimal  `gorm:"type:decimal(16,2);not null;check:amount >= 0" json:"amount"`
	Paid              bool             `gorm:"default:false" json:"paid"`
	Discount          int              `gorm:"default:0;check:discount >= 0 AND discount <= 100" json:"discount"` // percent
	Items             []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt         time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"` // unit price at checkout time
	Quantity  int             `gorm:"default:1;check:quantity > 0" json:"quantity"`
	UserID    *uint           `json:"user_id"`
}

// Cost returns the line total: unit price snapshot times quantity.
func (i OrderItem) Cost() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalCostBeforeDiscount sums the cost of all loaded items.
func (o *Order) TotalCostBeforeDiscount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Cost())
	}
	return total
}

// DiscountAmount returns the discount portion of the order total. An order
// with no discount, or no items, yields zero.
func (o *Order) DiscountAmount() decimal.Decimal {
	total := o.TotalCostBeforeDiscount()
	if total.IsZero() || o.Discount == 0 {
		return decimal.Zero
	}
	return total.Mul(decimal.NewFromInt(int64(o.Discount))).Div(decimal.NewFromInt(100))
}

// TotalCost is the amount actually charged for the order.
func (o *Order) TotalCost() decimal.Decimal {
	return o.TotalCostBeforeDiscount().Sub(o.DiscountAmount())
}

// TotalQuantityForProduct reports how many units of a product have been sold
// across all orders.
func TotalQuantityForProduct(db *gorm.DB, productID uint) (int64, error) {
	var total int64
	err := db.Model(&OrderItem{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

// AverageItemPrice returns the average unit price across all order items.
func AverageItemPrice(db *gorm.DB) (decimal.Decimal, error) {
	var avg decimal.NullDecimal
	err := db.Model(&OrderItem{}).
		Select("AVG(price)").
		Scan(&avg).Error
	if err != nil || !avg.Valid {
		return decimal.Zero, err
	}
	return avg.Decimal, nil
}
