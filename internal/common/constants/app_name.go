package constants

const (
	APP_MAIN         = "cart-api"
	APP_CART_SERVICE = "cart-service"
	AUDIENCE_USER    = "audience-user"
	ISSUER_USER      = "user-service"

	URL_PRODUCT_SERVICE = "http://product-service:8080/products"
	URL_USER_SERVICE    = "http://user-service:8080/users"
)
