package pymol

import (
	"context"

	"github.com/kilupskalvis/molbridge/internal/models"
)

// ClientInterface defines the contract for PyMOL session operations.
// This interface enables mocking for testing the core package.
//
// Selection parameters are full PyMOL selection expressions; state parameters
// follow the engine convention of 1-based state indices with 0 meaning
// "all states".
type ClientInterface interface {
	// Session queries
	GetObjectList(ctx context.Context) ([]string, error)
	CountAtoms(ctx context.Context, selection string) (int, error)
	CountStates(ctx context.Context, name string) (int, error)

	// Structure transfer
	LoadModel(ctx context.Context, model *models.ObjectModel, name string) error
	LoadCoordSet(ctx context.Context, coords [][3]float64, name string) error
	GetModel(ctx context.Context, name string, state int) (*models.ObjectModel, error)
	GetCoordSet(ctx context.Context, name string, state int) ([][3]float64, error)
	Delete(ctx context.Context, name string) error

	// Color registry
	GetColorIndices(ctx context.Context) (map[string]int, error)
	SetColor(ctx context.Context, name string, rgb [3]float64) error

	// Display and geometry commands
	Alter(ctx context.Context, selection, expression string) error
	Cartoon(ctx context.Context, kind, selection string) error
	Center(ctx context.Context, selection string, state int, origin bool) error
	Clip(ctx context.Context, mode string, distance float64, selection string, state int) error
	Color(ctx context.Context, color, selection string) error
	Desaturate(ctx context.Context, selection string, factor float64) error
	Disable(ctx context.Context, selection string) error
	Distance(ctx context.Context, name, selection1, selection2 string, cutoff float64, mode int) error
	Dss(ctx context.Context, selection string, state int) error
	Enable(ctx context.Context, selection string) error
	Hide(ctx context.Context, representation, selection string) error
	Indicate(ctx context.Context, selection string) error
	Orient(ctx context.Context, selection string, state int) error
	Origin(ctx context.Context, selection string, state int) error
	Select(ctx context.Context, name, selection string) (int, error)
	Set(ctx context.Context, setting string, value any, selection string, state int) error
	SetBond(ctx context.Context, setting string, value any, selection1, selection2 string, state int) error
	Show(ctx context.Context, representation, selection string) error
	Smooth(ctx context.Context, selection string, passes, window, first, last int, ends bool) error
	Unset(ctx context.Context, setting, selection string, state int) error
	UnsetBond(ctx context.Context, setting, selection1, selection2 string, state int) error
	Zoom(ctx context.Context, selection string, buffer float64, state int, complete bool) error
}

// Verify that *Client implements ClientInterface at compile time
var _ ClientInterface = (*Client)(nil)
