package shop

// Entity type names, used as id prefixes and registry keys.
const (
	TypeUser     = "user"
	TypeProduct  = "product"
	TypeCartItem = "cart_item"
)

// User is a registered account. Passwords are stored as entered; the demo
// deliberately carries no credential hashing.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Admin     bool   `json:"isAdmin"`
}

// Product is a catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// CartItem is one cart line. ProductID is a foreign reference, not an
// ownership relation.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// CartLine pairs a cart item with its resolved product.
type CartLine struct {
	Item    CartItem
	Product Product
}

// ProductUpdate carries the fields to merge onto an existing product.
// Nil fields are left untouched. Price arrives as text and is coerced on
// every update, mirroring form input.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *string
	Image       *string
}
