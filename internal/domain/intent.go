package domain

// IntentKind identifies what a chat message is asking for.
type IntentKind string

const (
	IntentGreeting      IntentKind = "greeting"
	IntentFarewell      IntentKind = "farewell"
	IntentPriceQuery    IntentKind = "price_query"
	IntentStockQuery    IntentKind = "stock_query"
	IntentCategoryQuery IntentKind = "category_query"
	IntentRatingQuery   IntentKind = "rating_query"
	IntentProductDetail IntentKind = "product_detail"
	IntentCategoryList  IntentKind = "category_list"
	IntentGeneric       IntentKind = "generic"
)

// Intent is the classified meaning of a single chat message. Parameter
// fields are set only for the kinds that use them; threshold pointers
// distinguish "absent" from zero.
type Intent struct {
	Kind            IntentKind
	ProductName     string
	Category        string
	PriceThreshold  *float64
	RatingThreshold *float64
	// Inclusive marks "N or less" style boundaries; "under N" is exclusive.
	Inclusive  bool
	RawMessage string
}
