package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Categories() CategoryRepository
	MenuItems() MenuItemRepository
	Tables() TableRepository
	Orders() OrderRepository
	Pauses() PauseRepository
}
