// Package analysisrecord provides repository interface and types for
// stored encounter analyses
package analysisrecord

import (
	"context"
	"time"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=analysisrecordmock github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/repositories/analysis_record Repository

// Record is a stored snapshot of one completed analysis. The party
// itself is never persisted; only the result and enough request shape
// to make the history readable.
type Record struct {
	// Unique identifier for this analysis
	ID string

	// Entity that requested the analysis (e.g., a session or player ID);
	// empty for anonymous requests
	EntityID string

	// Encounter that was analyzed
	EventType entities.EncounterType

	// Number of characters in the analyzed party
	PartySize int32

	// Estimation strategy that produced the party-level number
	Strategy string

	// The full analysis response returned to the caller
	Result *entities.AnalysisResult

	// When this record was created
	CreatedAt time.Time

	// When this record expires
	ExpiresAt time.Time
}

// CreateInput contains parameters for storing an analysis record
type CreateInput struct {
	Record *Record
	TTL    time.Duration // how long the record should live
}

// CreateOutput contains the result of storing a record
type CreateOutput struct {
	Record *Record
}

// GetInput contains parameters for retrieving a record by ID
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved record
type GetOutput struct {
	Record *Record
}

// ListInput contains parameters for listing an entity's records
type ListInput struct {
	EntityID string
	Limit    int // defaults to 20
}

// ListOutput contains the listed records, newest first
type ListOutput struct {
	Records []*Record
}

// DeleteInput contains parameters for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a record
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for analysis record storage
type Repository interface {
	// Create stores a new analysis record with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a record by analysis ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns an entity's records, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a record
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
