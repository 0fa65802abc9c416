package category

// Category is a distinct product category as shown in the storefront filter.
type Category struct {
	Name string `json:"name"`
}
