package validation

// Schemas shared by the API components.
var (
	// UserSchema guards user creation.
	UserSchema = NewSchema(
		Field{Name: "name", Rule: StringRule{Required: true, MinLength: 2}},
		Field{Name: "email", Rule: EmailRule{Required: true}},
		Field{Name: "age", Rule: NumberRule{Min: Bound(13), Max: Bound(120)}},
	)

	// PaginationSchema guards list endpoints.
	PaginationSchema = NewQuerySchema(
		QueryField{Name: "page", Rule: NumberRule{Min: Bound(1)}},
		QueryField{Name: "limit", Rule: NumberRule{Min: Bound(1), Max: Bound(100)}},
	)

	// SearchSchema guards search endpoints.
	SearchSchema = NewQuerySchema(
		QueryField{Name: "q", Rule: StringRule{Required: true, MinLength: 1}},
		QueryField{Name: "category", Rule: StringRule{}},
	)

	// TextSchema guards the text analysis endpoint.
	TextSchema = NewSchema(
		Field{Name: "text", Rule: StringRule{Required: true}},
		Field{Name: "maxLength", Rule: NumberRule{Min: Bound(4), Max: Bound(10000)}},
	)
)
