package domain

type SortOrder struct {
	Sort  string `bson:"sort" json:"sort" form:"order_by"` // sort field
	Order string `bson:"order" json:"order" form:"order"`  // asc or desc
}

// Ascending reports whether the order is explicitly "asc".
func (s SortOrder) Ascending() bool {
	return s.Order == "asc"
}
