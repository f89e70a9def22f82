package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/conslaw/equations"
	"github.com/notargets/conslaw/utils"
)

type LawType uint8

const (
	LinearAdvection LawType = iota
	InviscidBurgers
	LinearSystem
	Euler1D
)

var (
	LawNames = map[string]LawType{
		"linearadvection": LinearAdvection,
		"advection":       LinearAdvection,
		"inviscidburgers": InviscidBurgers,
		"burgers":         InviscidBurgers,
		"linearsystem":    LinearSystem,
		"euler1d":         Euler1D,
		"euler":           Euler1D,
	}
	LawPrintNames = []string{"LinearAdvection", "InviscidBurgers", "LinearSystem", "Euler1D"}
)

func (lt LawType) String() string {
	if int(lt) < len(LawPrintNames) {
		return LawPrintNames[lt]
	}
	return "Unknown"
}

func NewLawType(label string) (lt LawType, err error) {
	var (
		ok bool
	)
	if lt, ok = LawNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unable to use law named [%s], choose one of %v", label, LawPrintNames)
	}
	return
}

// Parameters obtained from the YAML input file
type LawParameters struct {
	Title          string      `yaml:"Title"`
	Law            string      `yaml:"Law"`
	Gamma          float64     `yaml:"Gamma"`
	AdvectionSpeed float64     `yaml:"AdvectionSpeed"`
	Matrix         [][]float64 `yaml:"Matrix"` // LinearSystem coefficients, one row per entry
	State          []float64   `yaml:"State"`
}

func (lp *LawParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, lp); err != nil {
		return fmt.Errorf("unable to parse law parameters: %w", err)
	}
	if lp.Gamma == 0 {
		lp.Gamma = 1.4
	}
	return
}

func (lp *LawParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", lp.Title)
	fmt.Printf("[%s]\t\t= Law\n", lp.Law)
	lt, _ := NewLawType(lp.Law)
	switch lt {
	case LinearAdvection:
		fmt.Printf("%8.5f\t\t= AdvectionSpeed\n", lp.AdvectionSpeed)
	case LinearSystem:
		fmt.Printf("%v\t= Matrix\n", lp.Matrix)
	case Euler1D:
		fmt.Printf("%8.5f\t\t= Gamma\n", lp.Gamma)
	}
	if len(lp.State) != 0 {
		fmt.Printf("%v\t\t= State\n", lp.State)
	}
}

func (lp *LawParameters) NewLaw() (law equations.ConservationLaw, err error) {
	var (
		lt LawType
	)
	if lt, err = NewLawType(lp.Law); err != nil {
		return
	}
	switch lt {
	case LinearAdvection:
		law = equations.NewLinearAdvection(lp.AdvectionSpeed)
	case InviscidBurgers:
		law = equations.NewInviscidBurgers()
	case LinearSystem:
		if len(lp.Matrix) == 0 {
			err = fmt.Errorf("law %s needs a Matrix", lt)
			return
		}
		var (
			A  utils.Matrix
			ls *equations.LinearSystem
		)
		if A, err = utils.NewMatrixFromRows(lp.Matrix); err != nil {
			return nil, fmt.Errorf("law %s: %w", lt, err)
		}
		if ls, err = equations.NewLinearSystem(A); err != nil {
			return nil, fmt.Errorf("law %s: %w", lt, err)
		}
		law = ls
	case Euler1D:
		gamma := lp.Gamma
		if gamma == 0 {
			gamma = 1.4
		}
		law = equations.NewEuler1D(gamma)
	}
	return
}

// DefaultState is the State entry, or a unit state sized for the law
func (lp *LawParameters) DefaultState(law equations.ConservationLaw) utils.Vector {
	if len(lp.State) != 0 {
		data := make([]float64, len(lp.State))
		copy(data, lp.State)
		return utils.NewVector(len(data), data)
	}
	switch l := law.(type) {
	case *equations.Euler1D:
		return l.UPRhoToU(0, 1, 1)
	case *equations.LinearSystem:
		return utils.NewVectorConstant(l.Dimension(), 1)
	}
	return utils.NewVectorConstant(1, 1)
}

// CheckState verifies the state length fits the law: three for Euler1D, the
// system dimension for LinearSystem, at least one for the scalar laws
func CheckState(law equations.ConservationLaw, U utils.Vector) (err error) {
	var (
		n    = U.Len()
		want = -1
	)
	switch l := law.(type) {
	case *equations.Euler1D:
		want = 3
	case *equations.LinearSystem:
		want = l.Dimension()
	}
	switch {
	case want != -1 && n != want:
		err = fmt.Errorf("state of length %d does not fit %v, need %d values", n, law, want)
	case n == 0:
		err = fmt.Errorf("empty state for %v", law)
	}
	return
}
