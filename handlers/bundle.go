// File: handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Menu *MenuHandler
	// Storage is nil when image uploads are not configured.
	Storage *StorageHandler
	Health  *HealthHandler
}
