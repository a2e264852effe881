package strategy

import (
	"fmt"
	"slices"
	"sync"

	"github.com/agbru/bigcalc/internal/magnitude"
)

// Default strategy names.
const (
	NameAuto       = "auto"
	NameLong       = "long"
	NameKaratsuba  = "karatsuba"
	NameSchoolbook = "schoolbook"
	NameRecursive  = "recursive"
	NameMathBig    = "mathbig"
)

// Factory is a registry of strategies keyed by kind and name. It is safe for
// concurrent use.
type Factory struct {
	mu         sync.RWMutex
	strategies map[Kind]map[string]Strategy
}

// NewFactory returns an empty registry.
func NewFactory() *Factory {
	return &Factory{strategies: make(map[Kind]map[string]Strategy)}
}

// NewDefaultFactory returns a registry holding every built-in strategy.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	for _, s := range []Strategy{
		Multiplier(NameAuto, "Auto (threshold dispatch)", magnitude.Mul),
		Multiplier(NameLong, "Long multiplication", magnitude.LongMultiply),
		Multiplier(NameKaratsuba, "Karatsuba", magnitude.KaratsubaMultiply),
		Multiplier(NameMathBig, "math/big reference", bigMul),
		Divider(NameAuto, "Auto (threshold dispatch)", magnitude.Divide),
		Divider(NameSchoolbook, "Schoolbook long division", magnitude.DivideLong),
		Divider(NameRecursive, "Recursive divide and conquer", magnitude.DivideRecursive),
		Divider(NameMathBig, "math/big reference", bigQuoRem),
	} {
		// Built-in names are unique per kind.
		_ = f.Register(s)
	}
	return f
}

var (
	globalFactory     *Factory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns the process-wide default registry.
func GlobalFactory() *Factory {
	globalFactoryOnce.Do(func() { globalFactory = NewDefaultFactory() })
	return globalFactory
}

// Register adds s, failing if a strategy of the same kind and name exists.
func (f *Factory) Register(s Strategy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	byName := f.strategies[s.Kind()]
	if byName == nil {
		byName = make(map[string]Strategy)
		f.strategies[s.Kind()] = byName
	}
	if _, exists := byName[s.Name()]; exists {
		return fmt.Errorf("strategy %s/%s already registered", s.Kind(), s.Name())
	}
	byName[s.Name()] = s
	return nil
}

// Get returns the strategy of the given kind and name.
func (f *Factory) Get(kind Kind, name string) (Strategy, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.strategies[kind][name]
	if !ok {
		return nil, fmt.Errorf("unknown %s strategy %q (available: %v)", kind, name, f.listLocked(kind))
	}
	return s, nil
}

// List returns the sorted names registered for kind.
func (f *Factory) List(kind Kind) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.listLocked(kind)
}

func (f *Factory) listLocked(kind Kind) []string {
	names := make([]string, 0, len(f.strategies[kind]))
	for name := range f.strategies[kind] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetAll returns every strategy of kind in name order.
func (f *Factory) GetAll(kind Kind) []Strategy {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := f.listLocked(kind)
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		out = append(out, f.strategies[kind][name])
	}
	return out
}

// Select resolves a selection: "all" returns GetAll(kind), anything else the
// single named strategy.
func (f *Factory) Select(kind Kind, selection string) ([]Strategy, error) {
	if selection == "all" {
		return f.GetAll(kind), nil
	}
	s, err := f.Get(kind, selection)
	if err != nil {
		return nil, err
	}
	return []Strategy{s}, nil
}
