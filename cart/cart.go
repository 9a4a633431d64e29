// Package cart holds a shopper's session-scoped cart state: a mapping of
// product id to quantity plus the unit price captured when the product was
// added. Persistence goes through an injected Store so the cart logic does
// not depend on any particular session backend.
package cart

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/molokoedovmp/Online-shop/models"
)

// Entry is one cart line. Price is the unit price snapshot taken at
// add-time; later catalog price changes do not affect it.
type Entry struct {
	Quantity int             `json:"qty"`
	Price    decimal.Decimal `json:"price"`
}

type Cart struct {
	sessionID string
	store     Store
	entries   map[string]Entry
	dirty     bool
}

// Load reads the cart for a session from the store. A session with no saved
// cart yields an empty one.
func Load(ctx context.Context, store Store, sessionID string) (*Cart, error) {
	entries, err := store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]Entry)
	}
	return &Cart{
		sessionID: sessionID,
		store:     store,
		entries:   entries,
	}, nil
}

// Add puts quantity units of a product into the cart. Adding a product that
// is already present accumulates quantity; the price snapshot from the first
// add is kept.
func (c *Cart) Add(product models.Product, quantity int) {
	key := productKey(product.ID)
	if entry, ok := c.entries[key]; ok {
		entry.Quantity += quantity
		c.entries[key] = entry
	} else {
		c.entries[key] = Entry{Quantity: quantity, Price: product.Price}
	}
	c.dirty = true
}

// Update sets an entry's quantity. A quantity of zero or less removes the
// entry. Updating a product that is not in the cart is a no-op.
func (c *Cart) Update(productID string, quantity int) {
	entry, ok := c.entries[productID]
	if !ok {
		return
	}
	if quantity > 0 {
		entry.Quantity = quantity
		c.entries[productID] = entry
	} else {
		delete(c.entries, productID)
	}
	c.dirty = true
}

// Delete removes an entry. Unknown ids are a no-op.
func (c *Cart) Delete(productID string) {
	if _, ok := c.entries[productID]; !ok {
		return
	}
	delete(c.entries, productID)
	c.dirty = true
}

// Len is the total number of units in the cart, not the number of distinct
// products.
func (c *Cart) Len() int {
	total := 0
	for _, entry := range c.entries {
		total += entry.Quantity
	}
	return total
}

// TotalPrice sums price snapshot times quantity over all entries.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.entries {
		total = total.Add(entry.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
	}
	return total
}

// Clear empties the cart. Checkout calls this after transcribing the entries
// into an order.
func (c *Cart) Clear() {
	c.entries = make(map[string]Entry)
	c.dirty = true
}

// Entries returns a copy of the cart contents keyed by product id.
func (c *Cart) Entries() map[string]Entry {
	out := make(map[string]Entry, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

func (c *Cart) SessionID() string { return c.sessionID }

func (c *Cart) Dirty() bool { return c.dirty }

// Save persists the cart through the store if any mutation happened since
// load or the last save.
func (c *Cart) Save(ctx context.Context) error {
	if !c.dirty {
		return nil
	}
	if err := c.store.Set(ctx, c.sessionID, c.entries); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

func productKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
