package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/taxonomy"
)

var (
	ErrInvalidNoteYear = errors.New("year is outside the supported planning years")
	ErrNoteTooLong     = errors.New("note must be less than 10000 characters")
)

// YearNoteUsecase defines the interface for per-year planning notes
type YearNoteUsecase interface {
	GetNote(ctx context.Context, userID, year int) (*domain.YearNote, error)
	SaveNote(ctx context.Context, userID, year int, body string) (*domain.YearNote, error)
}

type yearNoteUsecase struct {
	noteRepo domain.YearNoteRepository
}

// NewYearNoteUsecase creates a new year note usecase
func NewYearNoteUsecase(noteRepo domain.YearNoteRepository) YearNoteUsecase {
	return &yearNoteUsecase{
		noteRepo: noteRepo,
	}
}

// GetNote retrieves the user's note for one planning year. A year with no
// saved note yet yields an empty note rather than an error, so the editor
// can open blank.
func (u *yearNoteUsecase) GetNote(ctx context.Context, userID, year int) (*domain.YearNote, error) {
	if !taxonomy.IsSupportedYear(year) {
		return nil, ErrInvalidNoteYear
	}
	note, err := u.noteRepo.GetByYear(ctx, userID, year)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.YearNote{UserID: userID, Year: year}, nil
		}
		return nil, err
	}
	return note, nil
}

// SaveNote upserts the user's note for one planning year. The client
// debounces autosave; each call here is a full overwrite.
func (u *yearNoteUsecase) SaveNote(ctx context.Context, userID, year int, body string) (*domain.YearNote, error) {
	if !taxonomy.IsSupportedYear(year) {
		return nil, ErrInvalidNoteYear
	}
	if len(body) > 10000 {
		return nil, ErrNoteTooLong
	}

	now := time.Now()
	return u.noteRepo.Upsert(ctx, &domain.YearNote{
		UserID:    userID,
		Year:      year,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
