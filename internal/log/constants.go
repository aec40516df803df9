package log

const (
	KEY_APP_NAME       = "app"
	KEY_CACHE_KEY      = "cacheKey"
	KEY_CART           = "cart"
	KEY_CART_ITEM      = "cartItem"
	KEY_CART_ITEMS     = "cartItems"
	KEY_CONFIG         = "config"
	KEY_CURRENCY       = "currency"
	KEY_PROCESS        = "process"
	KEY_PRODUCT        = "product"
	KEY_PRODUCT_ID     = "productId"
	KEY_QUANTITY       = "quantity"
	KEY_REQUEST_BODY   = "requestBody"
	KEY_REQUEST_HEADER = "requestHeader"
	KEY_REQUEST_HOST   = "host"
	KEY_REQUEST_ID     = "requestId"
	KEY_REQUEST_IP     = "requesterIP"
	KEY_REQUEST_METHOD = "requestMethod"
	KEY_REQUEST_URI    = "requestURI"
	KEY_REQUEST_URL    = "requestURL"
	KEY_SPAN_ID        = "spanId"
	KEY_TAG            = "tag"
	KEY_TOKEN          = "token"
	KEY_TOTAL          = "total"
	KEY_TRACE_ID       = "traceId"
	KEY_USER           = "user"
	KEY_USER_ID        = "userId"
)
