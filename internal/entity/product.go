package domain

// Product is a catalog entry. Defined once at process start, never mutated.
type Product struct {
	Name        string
	PriceCents  int64
	Description string
	// Type marks join packages ("Preferred Customer" / "Full Membership");
	// empty for regular products.
	Type string
}
