package pymol

import (
	"context"
	"fmt"

	"github.com/kilupskalvis/molbridge/internal/models"
)

// Wire representations of chempy model data as exchanged with the RPC
// server. Field names follow the chempy attribute names.

type rpcAtom struct {
	Symbol       string    `xmlrpc:"symbol"`
	Name         string    `xmlrpc:"name"`
	Resn         string    `xmlrpc:"resn"`
	InsCode      string    `xmlrpc:"ins_code"`
	ResiNumber   int       `xmlrpc:"resi_number"`
	B            float64   `xmlrpc:"b"`
	Q            float64   `xmlrpc:"q"`
	Hetatm       bool      `xmlrpc:"hetatm"`
	Chain        string    `xmlrpc:"chain"`
	Coord        []float64 `xmlrpc:"coord"`
	FormalCharge int       `xmlrpc:"formal_charge"`
	Alt          string    `xmlrpc:"alt"`
}

type rpcBond struct {
	Index []int `xmlrpc:"index"`
	Order int   `xmlrpc:"order"`
}

type rpcModel struct {
	Atom []rpcAtom `xmlrpc:"atom"`
	Bond []rpcBond `xmlrpc:"bond"`
}

func toRPCModel(model *models.ObjectModel) *rpcModel {
	out := &rpcModel{
		Atom: make([]rpcAtom, len(model.Atoms)),
		Bond: make([]rpcBond, len(model.Bonds)),
	}
	for i, a := range model.Atoms {
		out.Atom[i] = rpcAtom{
			Symbol:       a.Symbol,
			Name:         a.Name,
			Resn:         a.ResName,
			InsCode:      a.InsCode,
			ResiNumber:   a.ResID,
			B:            a.BFactor,
			Q:            a.Occupancy,
			Hetatm:       a.Hetero,
			Chain:        a.ChainID,
			Coord:        []float64{a.Coord[0], a.Coord[1], a.Coord[2]},
			FormalCharge: a.FormalCharge,
			Alt:          a.Altloc,
		}
	}
	for i, b := range model.Bonds {
		out.Bond[i] = rpcBond{Index: []int{b.Atom1, b.Atom2}, Order: b.Order}
	}
	return out
}

func fromRPCModel(model *rpcModel) (*models.ObjectModel, error) {
	out := &models.ObjectModel{
		Atoms: make([]models.AtomRecord, len(model.Atom)),
		Bonds: make([]models.Bond, len(model.Bond)),
	}
	for i, a := range model.Atom {
		if len(a.Coord) != 3 {
			return nil, fmt.Errorf("atom %d has %d coordinates, expected 3", i, len(a.Coord))
		}
		out.Atoms[i] = models.AtomRecord{
			Symbol:       a.Symbol,
			Name:         a.Name,
			ResName:      a.Resn,
			InsCode:      a.InsCode,
			ResID:        a.ResiNumber,
			BFactor:      a.B,
			Occupancy:    a.Q,
			Hetero:       a.Hetatm,
			ChainID:      a.Chain,
			Coord:        [3]float64{a.Coord[0], a.Coord[1], a.Coord[2]},
			FormalCharge: a.FormalCharge,
			Altloc:       a.Alt,
		}
	}
	for i, b := range model.Bond {
		if len(b.Index) != 2 {
			return nil, fmt.Errorf("bond %d has %d atom indices, expected 2", i, len(b.Index))
		}
		out.Bonds[i] = models.Bond{Atom1: b.Index[0], Atom2: b.Index[1], Order: b.Order}
	}
	return out, nil
}

func coordsToWire(coords [][3]float64) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = []float64{c[0], c[1], c[2]}
	}
	return out
}

func coordsFromWire(coords [][]float64) ([][3]float64, error) {
	out := make([][3]float64, len(coords))
	for i, c := range coords {
		if len(c) != 3 {
			return nil, fmt.Errorf("coordinate %d has %d components, expected 3", i, len(c))
		}
		out[i] = [3]float64{c[0], c[1], c[2]}
	}
	return out, nil
}

// GetObjectList returns the names of all objects in the session.
func (c *Client) GetObjectList(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.call(ctx, "get_names", []any{"objects"}, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CountAtoms returns the number of atoms matched by a selection expression.
func (c *Client) CountAtoms(ctx context.Context, selection string) (int, error) {
	var count int
	if err := c.call(ctx, "count_atoms", []any{selection}, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountStates returns the number of coordinate states of an object.
func (c *Client) CountStates(ctx context.Context, name string) (int, error) {
	var count int
	if err := c.call(ctx, "count_states", []any{name}, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// LoadModel creates an object from a per-atom record model.
func (c *Client) LoadModel(ctx context.Context, model *models.ObjectModel, name string) error {
	return c.call(ctx, "load_model", []any{toRPCModel(model), name}, nil)
}

// LoadCoordSet appends one coordinate state to an existing object.
func (c *Client) LoadCoordSet(ctx context.Context, coords [][3]float64, name string) error {
	return c.call(ctx, "load_coordset", []any{coordsToWire(coords), name}, nil)
}

// GetModel retrieves the per-atom record model of one state of an object.
func (c *Client) GetModel(ctx context.Context, name string, state int) (*models.ObjectModel, error) {
	var model rpcModel
	if err := c.call(ctx, "get_model", []any{name, state}, &model); err != nil {
		return nil, err
	}
	return fromRPCModel(&model)
}

// GetCoordSet retrieves the coordinate set of one state of an object.
func (c *Client) GetCoordSet(ctx context.Context, name string, state int) ([][3]float64, error) {
	var coords [][]float64
	if err := c.call(ctx, "get_coordset", []any{name, state}, &coords); err != nil {
		return nil, err
	}
	return coordsFromWire(coords)
}

// Delete removes an object from the session.
func (c *Client) Delete(ctx context.Context, name string) error {
	return c.call(ctx, "delete", []any{name}, nil)
}

// GetColorIndices returns all registered color names with their indices.
func (c *Client) GetColorIndices(ctx context.Context) (map[string]int, error) {
	var pairs [][]any
	if err := c.call(ctx, "get_color_indices", []any{}, &pairs); err != nil {
		return nil, err
	}
	colors := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("malformed color index entry: %v", p)
		}
		name, ok := p[0].(string)
		if !ok {
			return nil, fmt.Errorf("malformed color name: %v", p[0])
		}
		switch idx := p[1].(type) {
		case int:
			colors[name] = idx
		case int64:
			colors[name] = int(idx)
		case float64:
			colors[name] = int(idx)
		default:
			return nil, fmt.Errorf("malformed color index: %v", p[1])
		}
	}
	return colors, nil
}

// SetColor registers a named RGB color.
func (c *Client) SetColor(ctx context.Context, name string, rgb [3]float64) error {
	return c.call(ctx, "set_color", []any{name, []float64{rgb[0], rgb[1], rgb[2]}}, nil)
}

func (c *Client) Alter(ctx context.Context, selection, expression string) error {
	return c.call(ctx, "alter", []any{selection, expression}, nil)
}

func (c *Client) Cartoon(ctx context.Context, kind, selection string) error {
	return c.call(ctx, "cartoon", []any{kind, selection}, nil)
}

func (c *Client) Center(ctx context.Context, selection string, state int, origin bool) error {
	return c.call(ctx, "center", []any{selection, state, boolArg(origin)}, nil)
}

func (c *Client) Clip(ctx context.Context, mode string, distance float64, selection string, state int) error {
	return c.call(ctx, "clip", []any{mode, distance, selection, state}, nil)
}

func (c *Client) Color(ctx context.Context, color, selection string) error {
	return c.call(ctx, "color", []any{color, selection}, nil)
}

func (c *Client) Desaturate(ctx context.Context, selection string, factor float64) error {
	return c.call(ctx, "desaturate", []any{selection, factor}, nil)
}

func (c *Client) Disable(ctx context.Context, selection string) error {
	return c.call(ctx, "disable", []any{selection}, nil)
}

func (c *Client) Distance(ctx context.Context, name, selection1, selection2 string, cutoff float64, mode int) error {
	return c.call(ctx, "distance", []any{name, selection1, selection2, cutoff, mode}, nil)
}

func (c *Client) Dss(ctx context.Context, selection string, state int) error {
	return c.call(ctx, "dss", []any{selection, state}, nil)
}

func (c *Client) Enable(ctx context.Context, selection string) error {
	return c.call(ctx, "enable", []any{selection}, nil)
}

func (c *Client) Hide(ctx context.Context, representation, selection string) error {
	return c.call(ctx, "hide", []any{representation, selection}, nil)
}

func (c *Client) Indicate(ctx context.Context, selection string) error {
	return c.call(ctx, "indicate", []any{selection}, nil)
}

func (c *Client) Orient(ctx context.Context, selection string, state int) error {
	return c.call(ctx, "orient", []any{selection, state}, nil)
}

func (c *Client) Origin(ctx context.Context, selection string, state int) error {
	return c.call(ctx, "origin", []any{selection, state}, nil)
}

func (c *Client) Select(ctx context.Context, name, selection string) (int, error) {
	var count int
	if err := c.call(ctx, "select", []any{name, selection}, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (c *Client) Set(ctx context.Context, setting string, value any, selection string, state int) error {
	return c.call(ctx, "set", []any{setting, value, selection, state}, nil)
}

func (c *Client) SetBond(ctx context.Context, setting string, value any, selection1, selection2 string, state int) error {
	return c.call(ctx, "set_bond", []any{setting, value, selection1, selection2, state}, nil)
}

func (c *Client) Show(ctx context.Context, representation, selection string) error {
	return c.call(ctx, "show", []any{representation, selection}, nil)
}

func (c *Client) Smooth(ctx context.Context, selection string, passes, window, first, last int, ends bool) error {
	return c.call(ctx, "smooth", []any{selection, passes, window, first, last, boolArg(ends)}, nil)
}

func (c *Client) Unset(ctx context.Context, setting, selection string, state int) error {
	return c.call(ctx, "unset", []any{setting, selection, state}, nil)
}

func (c *Client) UnsetBond(ctx context.Context, setting, selection1, selection2 string, state int) error {
	return c.call(ctx, "unset_bond", []any{setting, selection1, selection2, state}, nil)
}

func (c *Client) Zoom(ctx context.Context, selection string, buffer float64, state int, complete bool) error {
	return c.call(ctx, "zoom", []any{selection, buffer, state, boolArg(complete)}, nil)
}

// boolArg encodes a flag the way the command interface expects it (0/1).
func boolArg(b bool) int {
	if b {
		return 1
	}
	return 0
}
