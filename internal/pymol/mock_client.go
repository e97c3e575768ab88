package pymol

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kilupskalvis/molbridge/internal/models"
)

// MockObject is one object held by a MockClient: its per-atom record model
// plus one coordinate set per state.
type MockObject struct {
	Model  *models.ObjectModel
	Coords [][][3]float64
}

// MockClient is an in-memory implementation of ClientInterface for testing.
// It evaluates the selection expression grammar this layer emits
// ("model NAME", "model NAME and (...)", "index a-b" disjunctions, "none",
// "all") so tests can verify which atoms a command addressed.
type MockClient struct {
	// Objects stores session objects by name
	Objects map[string]*MockObject
	// Colors is the registered color name registry
	Colors map[string]int
	// Selections stores named selections created via Select, as atom index sets
	Selections map[string][]int
	// Calls records forwarded display commands for assertions
	Calls []string
	// Err can be set to make methods return an error
	Err error
}

// NewMockClient creates a new MockClient with a few stock colors registered.
func NewMockClient() *MockClient {
	return &MockClient{
		Objects: make(map[string]*MockObject),
		Colors: map[string]int{
			"red":   4,
			"green": 3,
			"blue":  2,
			"white": 0,
		},
		Selections: make(map[string][]int),
	}
}

// AddObject adds an object to the mock session, seeding one coordinate state
// from the model's atom coordinates.
func (m *MockClient) AddObject(name string, model *models.ObjectModel) {
	coords := make([][3]float64, len(model.Atoms))
	for i, a := range model.Atoms {
		coords[i] = a.Coord
	}
	m.Objects[name] = &MockObject{Model: model, Coords: [][][3]float64{coords}}
}

// EvalSelection resolves a selection expression to the 0-based atom indices
// it matches. Exposed for test assertions.
func (m *MockClient) EvalSelection(selection string) ([]int, error) {
	s := strings.TrimSpace(selection)
	if !strings.HasPrefix(s, "model ") {
		return nil, fmt.Errorf("unsupported selection: %q", selection)
	}
	rest := strings.TrimSpace(strings.TrimPrefix(s, "model "))

	name := rest
	inner := ""
	if i := strings.Index(rest, " and "); i >= 0 {
		name = strings.TrimSpace(rest[:i])
		inner = strings.TrimSpace(rest[i+len(" and "):])
	}

	obj, ok := m.Objects[name]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", name)
	}
	n := len(obj.Model.Atoms)

	if inner == "" {
		return allIndices(n), nil
	}
	if !strings.HasPrefix(inner, "(") || !strings.HasSuffix(inner, ")") {
		return nil, fmt.Errorf("unsupported selection: %q", selection)
	}
	inner = strings.TrimSpace(inner[1 : len(inner)-1])

	switch inner {
	case "none":
		return nil, nil
	case "all":
		return allIndices(n), nil
	}

	var indices []int
	for _, clause := range strings.Split(inner, " or ") {
		clause = strings.TrimSpace(clause)
		rangeSpec, ok := strings.CutPrefix(clause, "index ")
		if !ok {
			return nil, fmt.Errorf("unsupported selection clause: %q", clause)
		}
		start, stop, err := parseRange(rangeSpec)
		if err != nil {
			return nil, err
		}
		// 1-based inclusive range
		for i := start; i <= stop && i <= n; i++ {
			indices = append(indices, i-1)
		}
	}
	return indices, nil
}

func parseRange(spec string) (int, int, error) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed index range: %q", spec)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed index range: %q", spec)
	}
	stop, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed index range: %q", spec)
	}
	return start, stop, nil
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

func (m *MockClient) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

// GetObjectList returns the names of all objects in the mock session.
func (m *MockClient) GetObjectList(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var names []string
	for name := range m.Objects {
		names = append(names, name)
	}
	return names, nil
}

// CountAtoms evaluates the selection and returns the number of matched atoms.
func (m *MockClient) CountAtoms(ctx context.Context, selection string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	indices, err := m.EvalSelection(selection)
	if err != nil {
		return 0, err
	}
	return len(indices), nil
}

// CountStates returns the number of coordinate states of an object.
func (m *MockClient) CountStates(ctx context.Context, name string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	obj, ok := m.Objects[name]
	if !ok {
		return 0, fmt.Errorf("no such object: %s", name)
	}
	return len(obj.Coords), nil
}

// LoadModel creates an object from a per-atom record model.
func (m *MockClient) LoadModel(ctx context.Context, model *models.ObjectModel, name string) error {
	if m.Err != nil {
		return m.Err
	}
	m.AddObject(name, model)
	return nil
}

// LoadCoordSet appends one coordinate state to an existing object.
func (m *MockClient) LoadCoordSet(ctx context.Context, coords [][3]float64, name string) error {
	if m.Err != nil {
		return m.Err
	}
	obj, ok := m.Objects[name]
	if !ok {
		return fmt.Errorf("no such object: %s", name)
	}
	obj.Coords = append(obj.Coords, coords)
	return nil
}

// GetModel returns the record model of one state, with coordinates taken
// from that state's coordinate set.
func (m *MockClient) GetModel(ctx context.Context, name string, state int) (*models.ObjectModel, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	obj, ok := m.Objects[name]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", name)
	}
	if state < 1 || state > len(obj.Coords) {
		return nil, fmt.Errorf("object %s has no state %d", name, state)
	}

	out := &models.ObjectModel{
		Atoms: append([]models.AtomRecord(nil), obj.Model.Atoms...),
		Bonds: append([]models.Bond(nil), obj.Model.Bonds...),
	}
	coords := obj.Coords[state-1]
	for i := range out.Atoms {
		if i < len(coords) {
			out.Atoms[i].Coord = coords[i]
		}
	}
	return out, nil
}

// GetCoordSet returns the coordinate set of one state.
func (m *MockClient) GetCoordSet(ctx context.Context, name string, state int) ([][3]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	obj, ok := m.Objects[name]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", name)
	}
	if state < 1 || state > len(obj.Coords) {
		return nil, fmt.Errorf("object %s has no state %d", name, state)
	}
	return append([][3]float64(nil), obj.Coords[state-1]...), nil
}

// Delete removes an object from the mock session.
func (m *MockClient) Delete(ctx context.Context, name string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Objects, name)
	return nil
}

// GetColorIndices returns the registered colors.
func (m *MockClient) GetColorIndices(ctx context.Context) (map[string]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	colors := make(map[string]int, len(m.Colors))
	for k, v := range m.Colors {
		colors[k] = v
	}
	return colors, nil
}

// SetColor registers a named color.
func (m *MockClient) SetColor(ctx context.Context, name string, rgb [3]float64) error {
	if m.Err != nil {
		return m.Err
	}
	m.Colors[name] = len(m.Colors)
	return nil
}

// Select stores a named selection and returns the matched atom count.
func (m *MockClient) Select(ctx context.Context, name, selection string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	indices, err := m.EvalSelection(selection)
	if err != nil {
		return 0, err
	}
	m.Selections[name] = indices
	return len(indices), nil
}

func (m *MockClient) Alter(ctx context.Context, selection, expression string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("alter %s | %s", selection, expression)
	return nil
}

func (m *MockClient) Cartoon(ctx context.Context, kind, selection string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("cartoon %s | %s", kind, selection)
	return nil
}

func (m *MockClient) Center(ctx context.Context, selection string, state int, origin bool) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("center %s | state=%d origin=%v", selection, state, origin)
	return nil
}

func (m *MockClient) Clip(ctx context.Context, mode string, distance float64, selection string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("clip %s %g | %s | state=%d", mode, distance, selection, state)
	return nil
}

func (m *MockClient) Color(ctx context.Context, color, selection string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("color %s | %s", color, selection)
	return nil
}

func (m *MockClient) Desaturate(ctx context.Context, selection string, factor float64) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("desaturate %s | %g", selection, factor)
	return nil
}

func (m *MockClient) Disable(ctx context.Context, selection string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("disable %s", selection)
	return nil
}

func (m *MockClient) Distance(ctx context.Context, name, selection1, selection2 string, cutoff float64, mode int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("distance %s | %s | %s | cutoff=%g mode=%d", name, selection1, selection2, cutoff, mode)
	return nil
}

func (m *MockClient) Dss(ctx context.Context, selection string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("dss %s | state=%d", selection, state)
	return nil
}

func (m *MockClient) Enable(ctx context.Context, selection string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("enable %s", selection)
	return nil
}

func (m *MockClient) Hide(ctx context.Context, representation, selection string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("hide %s | %s", representation, selection)
	return nil
}

func (m *MockClient) Indicate(ctx context.Context, selection string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("indicate %s", selection)
	return nil
}

func (m *MockClient) Orient(ctx context.Context, selection string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("orient %s | state=%d", selection, state)
	return nil
}

func (m *MockClient) Origin(ctx context.Context, selection string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("origin %s | state=%d", selection, state)
	return nil
}

func (m *MockClient) Set(ctx context.Context, setting string, value any, selection string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("set %s=%v | %s | state=%d", setting, value, selection, state)
	return nil
}

func (m *MockClient) SetBond(ctx context.Context, setting string, value any, selection1, selection2 string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("set_bond %s=%v | %s | %s | state=%d", setting, value, selection1, selection2, state)
	return nil
}

func (m *MockClient) Show(ctx context.Context, representation, selection string) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("show %s | %s", representation, selection)
	return nil
}

func (m *MockClient) Smooth(ctx context.Context, selection string, passes, window, first, last int, ends bool) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("smooth %s | passes=%d window=%d first=%d last=%d ends=%v",
		selection, passes, window, first, last, ends)
	return nil
}

func (m *MockClient) Unset(ctx context.Context, setting, selection string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("unset %s | %s | state=%d", setting, selection, state)
	return nil
}

func (m *MockClient) UnsetBond(ctx context.Context, setting, selection1, selection2 string, state int) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("unset_bond %s | %s | %s | state=%d", setting, selection1, selection2, state)
	return nil
}

func (m *MockClient) Zoom(ctx context.Context, selection string, buffer float64, state int, complete bool) error {
	if m.Err != nil {
		return m.Err
	}
	m.record("zoom %s | buffer=%g state=%d complete=%v", selection, buffer, state, complete)
	return nil
}

// Verify MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)
