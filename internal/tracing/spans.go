package tracing

// Span attribute keys shared across the recipe pipeline.
const (
	// Recipe attributes
	AttrRecipeGUID = "recipe.guid"
	AttrRecipeName = "recipe.name"

	// Codec attributes
	AttrBlockCount  = "codec.block_count"
	AttrRecordCount = "codec.record_count"
	AttrErrorCount  = "codec.error_count"

	// Grocery attributes
	AttrSelectionCount = "grocery.selection_count"
	AttrRecipeCount    = "grocery.recipe_count"
	AttrGroupCount     = "grocery.group_count"

	// Database attributes
	AttrDBPath  = "db.path"
	AttrDBQuery = "db.query"

	// Cache attributes
	AttrCacheHit = "cache.hit"
	AttrCacheKey = "cache.key"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Span name prefixes for consistent naming.
const (
	SpanPrefixCodec   = "codec."
	SpanPrefixGrocery = "grocery."
	SpanPrefixRepo    = "repo."
	SpanPrefixCache   = "cache."
)
