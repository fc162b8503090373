package quantum

import "github.com/san-kum/haot/internal/species"

// Dunham holds the potential expansion
// V(ξ) = a0·ξ²(1 + a1ξ + a2ξ² + a3ξ³), ξ = (r-re)/re.
type Dunham struct {
	A0 float64 // cm^-1
	A1 float64
	A2 float64
	A3 float64
}

// DunhamCoefficients derives the potential coefficients from the band
// constants (Dunham 1932, eq. 19). a3 is the Morse estimate a1³/4; the
// band constants alone do not fix it.
func DunhamCoefficients(molecule string) (Dunham, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return Dunham{}, err
	}
	return dunham(c), nil
}

func dunham(c species.Spectroscopy) Dunham {
	a1 := -c.AlphaE*c.OmegaE/(6*c.BE*c.BE) - 1
	a2 := 1.25*a1*a1 - (2.0/3.0)*c.OmegaXE/c.BE
	return Dunham{
		A0: c.OmegaE * c.OmegaE / (4 * c.BE),
		A1: a1,
		A2: a2,
		A3: a1 * a1 * a1 / 4,
	}
}
