package mongo

import (
	"fmt"
	"time"
)

const (
	collectionUsers    = "users"
	collectionShops    = "shops"
	collectionProducts = "products"
	collectionCarts    = "carts"
	collectionSales    = "sales"
	collectionPayments = "payments"

	dbConnectTimeout = 10 * time.Second
	dbPingTimeout    = 5 * time.Second

	msgUserAlreadyExists = "user already exist"
	msgShopAlreadyExists = "You Can Create Only One Shop"

	errUserNotFound    = "user not found"
	errShopNotFound    = "shop not found"
	errProductNotFound = "product not found"
	errAdminNotFound   = "admin user not found"
	errNoShopQuota     = "shop has no remaining product quota"

	errInvalidObjectIDFmt = "invalid object id %q: %w"

	errFailedConnectDatabaseFmt = "failed to connect to database: %w"
	errFailedPingDatabaseFmt    = "failed to ping database: %w"

	errFailedCreateUserFmt    = "failed to create user: %w"
	errFailedGetUserFmt       = "failed to get user: %w"
	errFailedListUsersFmt     = "failed to list users: %w"
	errFailedCountUsersFmt    = "failed to count users: %w"
	errFailedDecodeUsersFmt   = "failed to decode users: %w"
	errFailedPromoteUserFmt   = "failed to promote user: %w"
	errFailedAccrueIncomeFmt  = "failed to accrue admin income: %w"
	errFailedCreateShopFmt    = "failed to create shop: %w"
	errFailedGetShopFmt       = "failed to get shop: %w"
	errFailedListShopsFmt     = "failed to list shops: %w"
	errFailedDecodeShopsFmt   = "failed to decode shops: %w"
	errFailedUpdateLimitFmt   = "failed to update shop limit: %w"
	errFailedCreateProductFmt = "failed to create product: %w"
	errFailedGetProductFmt    = "failed to get product: %w"
	errFailedListProductsFmt  = "failed to list products: %w"
	errFailedDecodeProdsFmt   = "failed to decode products: %w"
	errFailedUpdateProductFmt = "failed to update product: %w"
	errFailedDeleteProductFmt = "failed to delete product: %w"
	errFailedAddCartEntryFmt  = "failed to add cart entry: %w"
	errFailedListCartFmt      = "failed to list cart entries: %w"
	errFailedDecodeCartFmt    = "failed to decode cart entries: %w"
	errFailedDeleteCartFmt    = "failed to delete cart entry: %w"
	errFailedAddSaleFmt       = "failed to add sale record: %w"
	errFailedListSalesFmt     = "failed to list sales: %w"
	errFailedCountSalesFmt    = "failed to count sales: %w"
	errFailedDecodeSalesFmt   = "failed to decode sales: %w"
	errFailedRecordPaymentFmt = "failed to record payment: %w"
)

func errInvalidObjectID(id string, err error) error {
	return fmt.Errorf(errInvalidObjectIDFmt, id, err)
}

func errFailedConnectDatabase(err error) error {
	return fmt.Errorf(errFailedConnectDatabaseFmt, err)
}

func errFailedPingDatabase(err error) error {
	return fmt.Errorf(errFailedPingDatabaseFmt, err)
}
