package domain

import "context"

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *Item) (*Item, error)
	GetByID(ctx context.Context, userID, id int) (*Item, error)
	List(ctx context.Context, userID int, filter ItemFilter) ([]Item, error)
	ListArchived(ctx context.Context, userID int) ([]Item, error)
	Update(ctx context.Context, userID, id int, item *Item) (*Item, error)
	UpdateStatus(ctx context.Context, userID int, ids []int, status Status) error
	Archive(ctx context.Context, userID, id int) error
	Restore(ctx context.Context, userID, id int) error
	Delete(ctx context.Context, userID, id int) error
}

// YearNoteRepository defines the interface for per-year note persistence
type YearNoteRepository interface {
	GetByYear(ctx context.Context, userID, year int) (*YearNote, error)
	Upsert(ctx context.Context, note *YearNote) (*YearNote, error)
}

// UserRepository defines the interface for user lookups used by auth
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	TouchLastLogin(ctx context.Context, id int) error
}
