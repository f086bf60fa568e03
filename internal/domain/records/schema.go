// Package records declares the field-constraint table for every entity
// kind and validates untrusted input against it. The tables are plain
// data built at startup; the /schema endpoint reads them directly.
package records

// Kind names one entity kind. The lowercase kind doubles as the
// document-store collection name.
type Kind string

const (
	KindUser       Kind = "user"
	KindArtwork    Kind = "artwork"
	KindInquiry    Kind = "inquiry"
	KindSupplyItem Kind = "supplyitem"
	KindOrder      Kind = "order"
	KindPost       Kind = "post"
	KindComment    Kind = "comment"
)

// Collection returns the document-store collection holding this kind.
func (k Kind) Collection() string { return string(k) }

// FieldType is the scalar constraint class of a field.
type FieldType string

const (
	TypeString     FieldType = "string"
	TypeEmail      FieldType = "email"
	TypeNumber     FieldType = "number"
	TypeInt        FieldType = "int"
	TypeBool       FieldType = "bool"
	TypeStringList FieldType = "string_list"
	TypeOrderItems FieldType = "order_items"
)

// Field is one entry of an entity's constraint table.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Default  any      // applied when the input omits the field
	Min      *float64 // numeric lower bound, rejected (not clamped) when violated
	Enum     []string // closed set of allowed string values
}

func ge(v float64) *float64 { return &v }

// schemas holds the per-kind field tables in declared order. Declared
// order is the order /schema reports and the order validation walks.
var schemas = map[Kind][]Field{
	KindUser: {
		{Name: "name", Type: TypeString, Required: true},
		{Name: "email", Type: TypeEmail, Required: true},
		{Name: "bio", Type: TypeString},
		{Name: "avatar_url", Type: TypeString},
		{Name: "role", Type: TypeString, Default: "collector", Enum: []string{"artist", "collector"}},
		{Name: "instagram", Type: TypeString},
		{Name: "website", Type: TypeString},
		{Name: "is_active", Type: TypeBool, Default: true},
	},
	KindArtwork: {
		{Name: "title", Type: TypeString, Required: true},
		{Name: "artist_id", Type: TypeString, Required: true},
		{Name: "description", Type: TypeString},
		{Name: "medium", Type: TypeString},
		{Name: "dimensions", Type: TypeString},
		{Name: "year", Type: TypeInt},
		{Name: "price", Type: TypeNumber, Min: ge(0)},
		{Name: "currency", Type: TypeString, Default: "USD"},
		{Name: "images", Type: TypeStringList},
		{Name: "is_available", Type: TypeBool, Default: true},
		{Name: "location", Type: TypeString},
	},
	KindInquiry: {
		{Name: "artwork_id", Type: TypeString, Required: true},
		{Name: "buyer_id", Type: TypeString},
		{Name: "buyer_name", Type: TypeString, Required: true},
		{Name: "buyer_email", Type: TypeEmail, Required: true},
		{Name: "message", Type: TypeString, Required: true},
		{Name: "status", Type: TypeString, Default: "open", Enum: []string{"open", "responded", "closed"}},
	},
	KindSupplyItem: {
		{Name: "title", Type: TypeString, Required: true},
		{Name: "brand", Type: TypeString},
		{Name: "description", Type: TypeString},
		{Name: "price", Type: TypeNumber, Required: true, Min: ge(0)},
		{Name: "currency", Type: TypeString, Default: "USD"},
		{Name: "category", Type: TypeString, Required: true},
		{Name: "stock", Type: TypeInt, Default: 0, Min: ge(0)},
		{Name: "image_url", Type: TypeString},
	},
	KindOrder: {
		{Name: "buyer_name", Type: TypeString, Required: true},
		{Name: "buyer_email", Type: TypeEmail, Required: true},
		{Name: "shipping_address", Type: TypeString, Required: true},
		{Name: "items", Type: TypeOrderItems, Required: true},
		{Name: "subtotal", Type: TypeNumber, Required: true, Min: ge(0)},
		{Name: "currency", Type: TypeString, Default: "USD"},
		{Name: "status", Type: TypeString, Default: "pending", Enum: []string{"pending", "paid", "shipped", "delivered", "cancelled"}},
	},
	KindPost: {
		{Name: "author_id", Type: TypeString},
		{Name: "author_name", Type: TypeString, Required: true},
		{Name: "content", Type: TypeString, Required: true},
		{Name: "image_url", Type: TypeString},
		{Name: "tags", Type: TypeStringList},
		{Name: "likes", Type: TypeInt, Default: 0, Min: ge(0)},
	},
	KindComment: {
		{Name: "post_id", Type: TypeString, Required: true},
		{Name: "author_name", Type: TypeString, Required: true},
		{Name: "content", Type: TypeString, Required: true},
	},
}

// Kinds lists every entity kind in a stable display order.
func Kinds() []Kind {
	return []Kind{
		KindUser, KindArtwork, KindInquiry, KindSupplyItem,
		KindOrder, KindPost, KindComment,
	}
}

// FieldNames returns the kind's field names in declared order, or nil
// for an unknown kind.
func FieldNames(kind Kind) []string {
	fields, ok := schemas[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

// Describe returns a copy of the kind's constraint table.
func Describe(kind Kind) []Field {
	fields, ok := schemas[kind]
	if !ok {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func (f Field) defaultValue() any {
	if f.Default != nil {
		return f.Default
	}
	if f.Type == TypeStringList {
		return []string{}
	}
	return nil
}
