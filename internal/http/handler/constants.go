package handler

const (
	jsonKeyMessage      = "message"
	jsonKeyError        = "error"
	jsonKeySuccess      = "success"
	jsonKeyInsertedID   = "insertedId"
	jsonKeyModified     = "modifiedCount"
	jsonKeyDeleted      = "deletedCount"
	jsonKeyResult       = "result"
	jsonKeyCount        = "count"
	jsonKeyTotalSales   = "totalSales"
	jsonKeyAdmin        = "admin"
	jsonKeyManager      = "manager"
	jsonKeyClientSecret = "clientSecret"

	paramEmail = "email"
	paramID    = "id"

	queryPage  = "page"
	queryEmail = "email"
	queryPrice = "price"

	msgInvalidRequestBody = "invalid request body"
	msgUnauthorizedAccess = "unauthorized access"
	msgForbiddenAccess    = "forbidden access"
	msgInvalidPage        = "invalid page number"
	msgInvalidPrice       = "invalid price"
	msgInvalidRole        = "invalid role value"
)
